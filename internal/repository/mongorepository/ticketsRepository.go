package mongorepository

import (
	"bytes"
	"context"
	"errors"

	"github.com/Falokut/tickets_analyzer_service/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TicketsRepository struct {
	db             *mongo.Client
	logger         *logrus.Logger
	databaseName   string
	collectionName string
}

func NewTicketsRepository(logger *logrus.Logger, db *mongo.Client,
	databaseName, collectionName string) *TicketsRepository {
	return &TicketsRepository{
		logger:         logger,
		db:             db,
		databaseName:   databaseName,
		collectionName: collectionName,
	}
}

func (r *TicketsRepository) PingContext(ctx context.Context) error {
	return r.db.Ping(ctx, nil)
}

// FetchTickets renders every document of the collection into a {"tickets": [...]} document,
// so records are validated the same way as the ones read from a file.
func (r *TicketsRepository) FetchTickets(ctx context.Context) (document []byte, err error) {
	defer r.handleError(ctx, &err, "FetchTickets")

	collection := r.db.Database(r.databaseName).Collection(r.collectionName)
	projection := bson.D{{Key: "_id", Value: 0}}
	cur, err := collection.Find(ctx, bson.D{}, options.Find().SetProjection(projection))
	if err != nil {
		return
	}
	defer cur.Close(ctx)

	var buf bytes.Buffer
	buf.WriteString(`{"tickets":[`)
	for first := true; cur.Next(ctx); first = false {
		var ticket []byte
		// relaxed extended JSON keeps numbers as plain JSON numbers
		ticket, err = bson.MarshalExtJSON(cur.Current, false, false)
		if err != nil {
			return
		}
		if !first {
			buf.WriteByte(',')
		}
		buf.Write(ticket)
	}
	if err = cur.Err(); err != nil {
		return
	}
	buf.WriteString(`]}`)

	return buf.Bytes(), nil
}

func (r *TicketsRepository) handleError(ctx context.Context, err *error, functionName string) {
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
	var repoErr = &models.ServiceError{}
	if !errors.As(*err, &repoErr) {
		switch {
		case errors.Is(*err, mongo.ErrNoDocuments):
			*err = models.Error(models.NotFound, "")
		default:
			*err = models.Error(models.Internal, "repository iternal error")
		}
	}
}

func (r *TicketsRepository) logError(err error, functionName string) {
	if err == nil {
		return
	}

	var repoErr = &models.ServiceError{}
	if errors.As(err, &repoErr) {
		r.logger.WithFields(
			logrus.Fields{
				"error.function.name": functionName,
				"error.msg":           repoErr.Msg,
				"error.code":          repoErr.Code,
			},
		).Error("tickets repository error occurred")
	} else {
		r.logger.WithFields(
			logrus.Fields{
				"error.function.name": functionName,
				"error.msg":           err.Error(),
			},
		).Error("tickets repository error occurred")
	}
}
