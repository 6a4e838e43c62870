package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/contract-capacity-api/internal/capacity"
	"github.com/noah-isme/contract-capacity-api/internal/dto"
	"github.com/noah-isme/contract-capacity-api/internal/models"
	appErrors "github.com/noah-isme/contract-capacity-api/pkg/errors"
	"github.com/noah-isme/contract-capacity-api/pkg/export"
)

// Capacity sheet headers. They satisfy the import header detection so an
// exported sheet re-imports unchanged once names are cleaned by sheetName.
const (
	capacityHeaderName  = "nome"
	capacityHeaderHours = "carga mensal"
)

type exportInstructorReader interface {
	ListAll(ctx context.Context) ([]models.Instructor, error)
}

type monthAgendaReader interface {
	ListMonth(ctx context.Context, month string) (*dto.MonthAgendaResponse, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(doc export.Document) ([]byte, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ExportService renders the capacity sheet and the monthly agenda.
type ExportService struct {
	instructors exportInstructorReader
	agenda      monthAgendaReader
	csv         csvRenderer
	pdf         pdfRenderer
	logger      *zap.Logger
	now         func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(instructors exportInstructorReader, agenda monthAgendaReader, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter(';', true)
	}
	if pdf == nil {
		pdf = export.NewPDFExporter(true)
	}
	return &ExportService{
		instructors: instructors,
		agenda:      agenda,
		csv:         csv,
		pdf:         pdf,
		logger:      logger,
		now:         time.Now,
	}
}

// CapacitySheet renders one "name;monthly hours" line per instructor whose
// name or area contains search, encoded as Windows-1252.
func (s *ExportService) CapacitySheet(ctx context.Context, search string) (*ExportFile, error) {
	instructors, err := s.instructors.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load instructors")
	}
	instructors = capacity.FilterInstructors(instructors, search)

	dataset := export.Dataset{Headers: []string{capacityHeaderName, capacityHeaderHours}}
	for _, inst := range instructors {
		dataset.Rows = append(dataset.Rows, map[string]string{
			capacityHeaderName:  sheetName(inst.Name),
			capacityHeaderHours: strconv.FormatFloat(capacity.MonthlyCapacity(inst), 'f', -1, 64),
		})
	}

	rendered, err := s.csv.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render capacity sheet")
	}
	encoded, err := capacity.EncodeWorkload(string(rendered))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode capacity sheet")
	}

	s.logger.Info("capacity sheet exported", zap.Int("rows", len(instructors)))
	return &ExportFile{
		FileName:    fmt.Sprintf("capacidade-%s.csv", s.now().UTC().Format("20060102")),
		ContentType: "text/csv; charset=windows-1252",
		Data:        encoded,
	}, nil
}

// sheetName drops characters the import parser cannot read back from an
// unquoted cell: the delimiter, quotes and line breaks.
func sheetName(name string) string {
	return strings.Join(strings.Fields(sheetNameCleaner.Replace(name)), " ")
}

var sheetNameCleaner = strings.NewReplacer(";", " ", `"`, " ", "\r", " ", "\n", " ")

// AgendaPDF renders the month's extra-grade activities.
func (s *ExportService) AgendaPDF(ctx context.Context, month string) (*ExportFile, error) {
	agenda, err := s.agenda.ListMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	headers := []string{"Data", "Docente", "Código", "Horas", "Turno"}
	dataset := export.Dataset{Headers: headers}
	for _, act := range agenda.Activities {
		name := act.InstructorID
		if act.InstructorName != nil {
			name = *act.InstructorName
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Data":    act.Date,
			"Docente": name,
			"Código":  act.Code,
			"Horas":   strconv.FormatFloat(act.Hours, 'f', -1, 64),
			"Turno":   string(act.Shift),
		})
	}

	rendered, err := s.pdf.Render(export.Document{
		Title:    "Agenda de atividades extras " + agenda.Month,
		Subtitle: fmt.Sprintf("%d atividades, %s horas. Gerado em %s", len(agenda.Activities), strconv.FormatFloat(agenda.TotalHours, 'f', -1, 64), s.now().UTC().Format("02/01/2006 15:04")),
		Data:     dataset,
		Widths:   []float64{2, 6, 2, 1.5, 2},
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render agenda")
	}

	return &ExportFile{
		FileName:    fmt.Sprintf("agenda-%s.pdf", agenda.Month),
		ContentType: "application/pdf",
		Data:        rendered,
	}, nil
}
