package filerepository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Falokut/tickets_analyzer_service/internal/models"
	"github.com/sirupsen/logrus"
)

type TicketsFile struct {
	path   string
	logger *logrus.Logger
}

func NewTicketsFile(logger *logrus.Logger, path string) *TicketsFile {
	return &TicketsFile{path: path, logger: logger}
}

func (r *TicketsFile) PingContext(ctx context.Context) error {
	info, err := os.Stat(r.path)
	if err != nil {
		return fmt.Errorf("error while checking tickets file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("tickets file %s is a directory", r.path)
	}
	return nil
}

func (r *TicketsFile) FetchTickets(ctx context.Context) (document []byte, err error) {
	defer r.handleError(ctx, &err, "FetchTickets")

	return os.ReadFile(r.path)
}

func (r *TicketsFile) handleError(ctx context.Context, err *error, functionName string) {
	if ctx.Err() != nil {
		var code models.ErrorCode
		switch {
		case errors.Is(ctx.Err(), context.Canceled):
			code = models.Canceled
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			code = models.DeadlineExceeded
		}
		*err = models.Error(code, ctx.Err().Error())
		r.logError(*err, functionName)
		return
	}

	if err == nil || *err == nil {
		return
	}

	r.logError(*err, functionName)
	switch {
	case errors.Is(*err, fs.ErrNotExist):
		*err = models.Errorf(models.NotFound, "tickets file %s not found", r.path)
	default:
		*err = models.Wrap(models.Internal, *err)
	}
}

func (r *TicketsFile) logError(err error, functionName string) {
	if err == nil {
		return
	}

	r.logger.WithFields(
		logrus.Fields{
			"error.function.name": functionName,
			"error.msg":           err.Error(),
			"tickets.file":        r.path,
		},
	).Error("tickets file error occurred")
}
