package sink

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	snapdomain "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snap-ads-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const tableKey = "_table"

//go:generate mockgen -source=jsonl.go -destination=mocks/mock_writer.go -package=mocks

// RowWriter entrega as linhas geradas para fora do processo
type RowWriter interface {
	WriteRows(ctx context.Context, table string, rows []snapdomain.Row) error
}

// JSONLinesWriter escreve uma linha JSON por registro, com a tabela em _table
type JSONLinesWriter struct {
	mu  sync.Mutex
	out io.Writer
}

func NewJSONLinesWriter(out io.Writer) *JSONLinesWriter {
	if out == nil {
		out = os.Stdout
	}
	return &JSONLinesWriter{out: out}
}

func (w *JSONLinesWriter) WriteRows(ctx context.Context, table string, rows []snapdomain.Row) error {
	if len(rows) == 0 {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	buffered := bufio.NewWriter(w.out)
	stream := json.BorrowStream(buffered)
	defer json.ReturnStream(stream)

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Valores aninhados viram colunas achatadas
		record := utils.FlattenJSON(map[string]any(row))
		record[tableKey] = table

		stream.WriteVal(record)
		stream.WriteRaw("\n")
		if stream.Error != nil {
			return errors.Wrapf(stream.Error, "sink: encode row %d of %s", i, table)
		}
	}

	if err := stream.Flush(); err != nil {
		return errors.Wrapf(err, "sink: flush %s", table)
	}
	if err := buffered.Flush(); err != nil {
		return errors.Wrapf(err, "sink: flush %s", table)
	}

	logrus.WithFields(logrus.Fields{
		"table": table,
		"rows":  len(rows),
	}).Debug("sink: rows written")

	return nil
}
