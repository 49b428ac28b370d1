package crm

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/agroventas/crm-api/internal/application/dto"
	"github.com/agroventas/crm-api/internal/domain"
	"github.com/agroventas/crm-api/internal/domain/entity"
	"github.com/agroventas/crm-api/internal/domain/repository"
	"github.com/agroventas/crm-api/internal/infrastructure/spreadsheet"
)

// Muestras máximas de filas problemáticas en el reporte. Los contadores
// siguen reflejando el total real.
const importSampleCap = 20

// Chequeos de forma, no de entregabilidad. El import marca inválido y sigue.
var (
	emailShapeRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneShapeRe = regexp.MustCompile(`^[0-9()+\-\s]{6,}$`)
)

// ImportLimits límites del archivo subido.
type ImportLimits struct {
	MaxRows      int
	MaxSizeBytes int64
}

// ImportUseCase pipeline de import masivo de clientes: parseo, normalización,
// validación por fila, dedupe contra existentes y alta en una sola tx.
type ImportUseCase struct {
	txRunner ImportTxRunner
	limits   ImportLimits
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(txRunner ImportTxRunner, limits ImportLimits) *ImportUseCase {
	return &ImportUseCase{txRunner: txRunner, limits: limits}
}

// Import procesa el archivo completo. Los rechazos por límite (tamaño, filas,
// archivo sin nombres resolubles) ocurren antes de abrir la transacción.
// Dentro de la tx, los saltos por validación o duplicado no abortan el batch;
// cualquier error de base de datos revierte todo.
func (uc *ImportUseCase) Import(ctx context.Context, caller Identity, filename string, data []byte) (*dto.ImportReport, error) {
	if !spreadsheet.SupportedExtension(filename) {
		return nil, fmt.Errorf("%w: extensión no soportada (use .xlsx, .xls o .csv)", domain.ErrInvalidInput)
	}
	if int64(len(data)) > uc.limits.MaxSizeBytes {
		return nil, fmt.Errorf("%w: el archivo supera el tamaño máximo de %d bytes", domain.ErrInvalidInput, uc.limits.MaxSizeBytes)
	}
	rows, err := spreadsheet.Parse(filename, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return uc.ImportRows(ctx, caller, rows)
}

// ImportRows ejecuta el pipeline sobre filas ya parseadas.
func (uc *ImportUseCase) ImportRows(ctx context.Context, caller Identity, parsed []spreadsheet.Row) (*dto.ImportReport, error) {
	if len(parsed) == 0 {
		return nil, fmt.Errorf("%w: el archivo no contiene filas de datos", domain.ErrInvalidInput)
	}

	// Normalización: las filas sin nombre resoluble se descartan acá, antes
	// del límite de filas y fuera de los totales del reporte.
	rows := make([]spreadsheet.Row, 0, len(parsed))
	for _, r := range parsed {
		if r.Name != "" {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: ninguna fila tiene un nombre resoluble", domain.ErrInvalidInput)
	}
	if len(rows) > uc.limits.MaxRows {
		return nil, fmt.Errorf("%w: el archivo tiene %d filas y el máximo es %d", domain.ErrInvalidInput, len(rows), uc.limits.MaxRows)
	}

	report := &dto.ImportReport{
		Total:      len(rows),
		Duplicates: []dto.ImportRowIssue{},
		Invalids:   []dto.ImportRowIssue{},
	}

	err := uc.txRunner.RunImport(ctx, func(customerRepo repository.CustomerRepository) error {
		for i, row := range rows {
			rowNum := i + 1

			// Orden de chequeos fijo: email, teléfono, dedupe. Una fila con
			// varias violaciones se reporta solo por la primera.
			if row.Email != "" && !emailShapeRe.MatchString(row.Email) {
				report.InvCount++
				if len(report.Invalids) < importSampleCap {
					report.Invalids = append(report.Invalids, issue(rowNum, row, "email inválido"))
				}
				continue
			}
			if row.Phone != "" && !phoneShapeRe.MatchString(row.Phone) {
				report.InvCount++
				if len(report.Invalids) < importSampleCap {
					report.Invalids = append(report.Invalids, issue(rowNum, row, "teléfono inválido"))
				}
				continue
			}
			if row.Email != "" || row.Phone != "" {
				existing, err := customerRepo.FindByEmailOrPhone(row.Email, row.Phone)
				if err != nil {
					return err // error de DB: revierte el batch completo
				}
				if existing != nil {
					report.DupCount++
					if len(report.Duplicates) < importSampleCap {
						report.Duplicates = append(report.Duplicates, issue(rowNum, row, "cliente existente con mismo email o teléfono"))
					}
					continue
				}
			}

			now := time.Now()
			customer := &entity.Customer{
				ID:         uuid.New().String(),
				Name:       row.Name,
				Company:    row.Company,
				Phone:      row.Phone,
				Email:      row.Email,
				Localidad:  row.Localidad,
				Sector:     row.Sector,
				Type:       entity.TypeClient,
				AssignedTo: caller.UserID,
				CreatedBy:  caller.UserID,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := customerRepo.Create(customer); err != nil {
				return err
			}
			report.Inserted++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	report.Skipped = report.Total - report.Inserted
	return report, nil
}

func issue(rowNum int, row spreadsheet.Row, reason string) dto.ImportRowIssue {
	return dto.ImportRowIssue{
		Row:    rowNum,
		Name:   row.Name,
		Email:  row.Email,
		Phone:  row.Phone,
		Reason: reason,
	}
}
