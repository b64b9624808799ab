package sheetpages

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetpages-go/pkg/sheetpages/models"
	"github.com/ukaji3/sheetpages-go/pkg/sheetpages/parser"
	"go.uber.org/zap"
)

// ProcessFile runs the pipeline on the spreadsheet at path.
// Files ending in .csv are read as comma-separated text, anything else as xlsx.
func ProcessFile(ctx context.Context, path string, opts Options) (*models.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	return run(ctx, f, filepath.Base(path), parser.DecoderFor(path), opts)
}

// Process runs the pipeline on an xlsx workbook read from r.
func Process(ctx context.Context, r io.Reader, opts Options) (*models.Document, error) {
	return ProcessWith(ctx, r, parser.XLSXDecoder{}, opts)
}

// ProcessWith runs the pipeline on r using the given decoder.
func ProcessWith(ctx context.Context, r io.Reader, dec parser.Decoder, opts Options) (*models.Document, error) {
	return run(ctx, r, "", dec, opts)
}

// run reads all input bytes, decodes them and applies extract, rank and
// paginate in order. Only the read and the decode can fail.
func run(ctx context.Context, r io.Reader, source string, dec parser.Decoder, opts Options) (*models.Document, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	log := opts.logger().With(zap.String("source", source))

	data, err := readAll(ctx, r)
	if err != nil {
		return nil, err
	}

	sheet, err := dec.Decode(bytes.NewReader(data), opts.Sheet)
	if err != nil {
		log.Warn("decode failed", zap.Error(err))
		return nil, NewDecodeError(source, err)
	}

	records := ExtractRecords(sheet.Rows)
	ranked := Rank(records, opts.Locale)
	pages := Paginate(ranked, opts.PageSize, opts.ColumnSize)

	log.Debug("pipeline complete",
		zap.String("sheet", sheet.Name),
		zap.Int("rows", len(sheet.Rows)),
		zap.Int("records", len(records)),
		zap.Int("pages", len(pages)),
	)

	return &models.Document{
		BookName:   source,
		SheetName:  sheet.Name,
		ColumnSize: opts.ColumnSize,
		Total:      len(ranked),
		Pages:      pages,
	}, nil
}

// readAll reads r to the end, giving up when ctx is done.
func readAll(ctx context.Context, r io.Reader) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(ctxReader{ctx: ctx, r: r})
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
