// Command report exporta el reporte financiero del store configurado a un archivo PDF o XML, sin servidor HTTP.
//
//	go run ./cmd/report -period=month -format=pdf -out=./exports
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	appanalytics "github.com/jhoicas/luviel-fluxo/internal/application/analytics"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/localdb"
	infrapdf "github.com/jhoicas/luviel-fluxo/internal/infrastructure/pdf"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/storage"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/xmlexport"
	"github.com/jhoicas/luviel-fluxo/pkg/config"
	"github.com/jhoicas/luviel-fluxo/pkg/logger"
)

func main() {
	period := flag.String("period", "day", "day | week | month")
	format := flag.String("format", "pdf", "pdf | xml")
	out := flag.String("out", ".", "directorio de salida")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Named("report")

	ctx := context.Background()
	db, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir store")
	}
	defer db.Close()

	loc, err := cfg.Locale.Location()
	if err != nil {
		log.Warn().Err(err).Str("timezone", cfg.Locale.Timezone).Msg("zona horaria inválida, usando hora local")
	}
	uc := appanalytics.NewReportUseCase(
		localdb.NewSaleRepository(db), localdb.NewCashEntryRepository(db),
		infrapdf.NewMarotoPDFGenerator(loc), xmlexport.NewExporter(),
		loc,
	)

	var (
		body     []byte
		filename string
	)
	switch *format {
	case "pdf":
		body, filename, err = uc.ExportPDF(ctx, *period)
	case "xml":
		body, filename, err = uc.ExportXML(ctx, *period)
	default:
		log.Fatal().Str("format", *format).Msg("formato desconhecido")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("gerar relatório")
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal().Err(err).Msg("criar diretório de saída")
	}
	path := filepath.Join(*out, filename)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		log.Fatal().Err(err).Msg("gravar relatório")
	}
	log.Info().Str("file", path).Int("bytes", len(body)).Msg("relatório exportado")
}
