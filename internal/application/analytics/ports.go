package analytics

import (
	"context"

	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
)

// ReportPDFGenerator genera la representación PDF de un relatorio.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *dto.ReportDTO) ([]byte, error)
}

// ReportXMLExporter serializa el relatorio a XML canónico con digest.
type ReportXMLExporter interface {
	ExportReportXML(ctx context.Context, report *dto.ReportDTO) ([]byte, error)
}
