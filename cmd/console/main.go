package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/noah-isme/sma-console/internal/client"
	"github.com/noah-isme/sma-console/internal/list"
	"github.com/noah-isme/sma-console/internal/models"
	"github.com/noah-isme/sma-console/internal/resource"
	"github.com/noah-isme/sma-console/internal/session"
	"github.com/noah-isme/sma-console/pkg/config"
	"github.com/noah-isme/sma-console/pkg/logger"
	"github.com/noah-isme/sma-console/pkg/storage"
)

func main() {
	resourceName := flag.String("resource", "students", "resource to list (users|students|grades|attendance|documents|lessons|academic-years)")
	format := flag.String("format", "csv", "export format (csv|pdf|xlsx)")
	search := flag.String("search", "", "free-text search applied before export")
	filters := flag.String("filter", "", "comma-separated field=value filter constraints")
	fields := flag.String("fields", "", "comma-separated export columns (defaults to all)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	sess, err := session.New(cfg.API.Token)
	if err != nil {
		logr.Sugar().Fatalw("invalid session token", "error", err)
	}

	metrics := client.NewMetrics(prometheus.DefaultRegisterer)
	api := client.New(client.Config{
		BaseURL:   cfg.API.BaseURL,
		Prefix:    cfg.API.Prefix,
		Timeout:   cfg.API.RequestTimeout,
		Session:   sess,
		Logger:    logr,
		Transport: client.WithMetrics(client.WithRequestID(nil), metrics),
	})

	sink, err := storage.NewLocalStorage(cfg.Export.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare export directory", "error", err)
	}
	if deleted, err := sink.CleanupOlderThan(cfg.Export.ResultTTL); err == nil && len(deleted) > 0 {
		logr.Sugar().Infow("stale exports removed", "count", len(deleted))
	}

	deps := resource.Deps{API: api, Validator: validator.New(), Logger: logr}
	confirmAll := func(id string) bool { return true }

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.API.RequestTimeout)
	defer cancel()

	var payload []byte
	var runErr error
	switch *resourceName {
	case "users":
		payload, runErr = run(ctx, resource.Users(deps, confirm[models.User](confirmAll)), *search, *filters, *fields, *format, exportTitle(*resourceName))
	case "students":
		payload, runErr = run(ctx, resource.Students(deps, confirm[models.Student](confirmAll)), *search, *filters, *fields, *format, exportTitle(*resourceName))
	case "grades":
		payload, runErr = run(ctx, resource.Grades(deps, confirm[models.Grade](confirmAll)), *search, *filters, *fields, *format, exportTitle(*resourceName))
	case "attendance":
		payload, runErr = run(ctx, resource.Attendance(deps, confirm[models.AttendanceEntry](confirmAll)), *search, *filters, *fields, *format, exportTitle(*resourceName))
	case "documents":
		payload, runErr = run(ctx, resource.Documents(deps, confirm[models.Document](confirmAll)), *search, *filters, *fields, *format, exportTitle(*resourceName))
	case "lessons":
		payload, runErr = run(ctx, resource.Lessons(deps, confirm[models.Lesson](confirmAll)), *search, *filters, *fields, *format, exportTitle(*resourceName))
	case "academic-years":
		payload, runErr = run(ctx, resource.AcademicYears(deps, confirm[models.AcademicYear](confirmAll)), *search, *filters, *fields, *format, exportTitle(*resourceName))
	default:
		logr.Sugar().Fatalw("unknown resource", "resource", *resourceName)
	}
	if runErr != nil {
		logr.Sugar().Fatalw("export failed", "resource", *resourceName, "error", runErr)
	}

	filename := fmt.Sprintf("%s_%s.%s", *resourceName, time.Now().UTC().Format("20060102_150405"), *format)
	if _, err := sink.Save(filename, payload); err != nil {
		logr.Sugar().Fatalw("failed to write export", "error", err)
	}
	logr.Sugar().Infow("export written", "file", sink.Path(filename), "bytes", len(payload))
}

func exportTitle(resourceName string) string {
	return strings.ReplaceAll(resourceName, "-", " ") + " report"
}

// confirm adapts an id-based prompt into a typed confirmation callback.
func confirm[T list.Record](ack func(id string) bool) list.ConfirmFunc[T] {
	return func(record T) bool { return ack(record.RecordID()) }
}

func run[T list.Record](ctx context.Context, ctrl *list.Controller[T], search, filters, fields, format, title string) ([]byte, error) {
	if _, err := ctrl.Load(ctx); err != nil {
		return nil, err
	}
	if search != "" {
		ctrl.SetSearchText(search)
	}
	for _, pair := range splitPairs(filters) {
		if _, err := ctrl.SetFilter(pair[0], pair[1]); err != nil {
			return nil, err
		}
	}

	columns := splitList(fields)
	if len(columns) == 0 {
		columns = ctrl.FieldNames()
	}

	switch format {
	case "csv":
		return ctrl.ExportCSV(columns)
	case "pdf":
		return ctrl.ExportPDF(columns, title)
	case "xlsx":
		return ctrl.ExportXLSX(columns)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func splitPairs(raw string) [][2]string {
	out := make([][2]string, 0)
	for _, item := range splitList(raw) {
		key, value, found := strings.Cut(item, "=")
		if !found {
			continue
		}
		out = append(out, [2]string{key, value})
	}
	return out
}
