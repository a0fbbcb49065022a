package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"sheetsync/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Service exports and imports workbook dumps.
type Service struct {
	logger *zap.Logger
	client storage.Client // nil disables storage archiving
	bucket string
}

// NewService creates an export service. client may be nil when object
// storage is not configured.
func NewService(logger *zap.Logger, client storage.Client, bucket string) *Service {
	return &Service{logger: logger, client: client, bucket: bucket}
}

// ExportWorkbook captures every sheet's values and formulas.
func (s *Service) ExportWorkbook(path string) (*Dump, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	defer f.Close()

	dump := &Dump{
		Workbook:   path,
		ExportedAt: time.Now().UTC(),
		Sheets:     make(map[string]SheetDump),
	}

	for _, sheet := range f.GetSheetList() {
		sheetDump, err := dumpSheet(f, sheet)
		if err != nil {
			return nil, err
		}
		dump.Sheets[sheet] = sheetDump
	}

	s.logger.Info("Workbook exported",
		zap.String("workbook", path),
		zap.Int("sheets", len(dump.Sheets)),
		zap.Int("cells", dump.CellCount()),
	)

	return dump, nil
}

// dumpSheet walks the sheet grid and captures every non-empty cell.
func dumpSheet(f *excelize.File, sheet string) (SheetDump, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return SheetDump{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var cells []CellDump
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return SheetDump{}, fmt.Errorf("cell name for %q (%d,%d): %w", sheet, colIdx+1, rowIdx+1, err)
			}

			formula, err := f.GetCellFormula(sheet, ref)
			if err != nil {
				return SheetDump{}, fmt.Errorf("read formula %s!%s: %w", sheet, ref, err)
			}

			if value == "" && formula == "" {
				continue
			}
			cells = append(cells, CellDump{Ref: ref, Value: value, Formula: formula})
		}
	}

	return SheetDump{Cells: cells}, nil
}

// ImportDump applies a dump onto the workbook at path, creating missing
// sheets, and saves the result. Formula cells are restored as formulas.
func (s *Service) ImportDump(path string, dump *Dump) error {
	f, err := excelize.OpenFile(path)
	if os.IsNotExist(err) {
		f = excelize.NewFile()
	} else if err != nil {
		return fmt.Errorf("open workbook %q: %w", path, err)
	}
	defer f.Close()

	for sheet, sheetDump := range dump.Sheets {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %q: %w", sheet, err)
		}

		for _, cell := range sheetDump.Cells {
			if cell.Formula != "" {
				if err := f.SetCellFormula(sheet, cell.Ref, cell.Formula); err != nil {
					return fmt.Errorf("restore formula %s!%s: %w", sheet, cell.Ref, err)
				}
				continue
			}
			if err := f.SetCellValue(sheet, cell.Ref, cell.Value); err != nil {
				return fmt.Errorf("restore cell %s!%s: %w", sheet, cell.Ref, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %q: %w", path, err)
	}

	s.logger.Info("Dump imported",
		zap.String("workbook", path),
		zap.Int("sheets", len(dump.Sheets)),
		zap.Int("cells", dump.CellCount()),
	)

	return nil
}

// WriteFile writes a dump as indented JSON.
func (s *Service) WriteFile(dump *Dump, path string) error {
	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dump: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write dump %q: %w", path, err)
	}
	return nil
}

// ReadFile loads a dump from a JSON file.
func (s *Service) ReadFile(path string) (*Dump, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dump %q: %w", path, err)
	}

	var dump Dump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("parse dump %q: %w", path, err)
	}
	return &dump, nil
}

// Upload archives a dump in object storage under objectName.
func (s *Service) Upload(ctx context.Context, dump *Dump, objectName string) error {
	if s.client == nil {
		return fmt.Errorf("object storage is not configured")
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %q: %w", s.bucket, err)
		}
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dump: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("upload dump %q: %w", objectName, err)
	}

	s.logger.Info("Dump archived",
		zap.String("bucket", s.bucket),
		zap.String("object", objectName),
		zap.Int("bytes", len(data)),
	)

	return nil
}

// DumpInfo describes one archived dump object.
type DumpInfo struct {
	// Object is the storage object name.
	Object string `json:"object"`

	// Size is the object size in bytes.
	Size int64 `json:"size"`

	// LastModified is when the dump was archived.
	LastModified time.Time `json:"last_modified"`
}

// ListDumps lists archived dumps whose object names start with prefix.
func (s *Service) ListDumps(ctx context.Context, prefix string) ([]DumpInfo, error) {
	if s.client == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}

	var dumps []DumpInfo
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})
	for obj := range objects {
		if obj.Err != nil {
			return nil, fmt.Errorf("list dumps in %q: %w", s.bucket, obj.Err)
		}
		dumps = append(dumps, DumpInfo{
			Object:       obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return dumps, nil
}

// RemoveDump deletes one archived dump from object storage.
func (s *Service) RemoveDump(ctx context.Context, objectName string) error {
	if s.client == nil {
		return fmt.Errorf("object storage is not configured")
	}

	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove dump %q: %w", objectName, err)
	}

	s.logger.Info("Dump removed",
		zap.String("bucket", s.bucket),
		zap.String("object", objectName),
	)
	return nil
}

// Download retrieves an archived dump from object storage.
func (s *Service) Download(ctx context.Context, objectName string) (*Dump, error) {
	if s.client == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}

	reader, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("download dump %q: %w", objectName, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read dump %q: %w", objectName, err)
	}

	var dump Dump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("parse dump %q: %w", objectName, err)
	}
	return &dump, nil
}
