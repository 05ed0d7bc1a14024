package store

import (
	"context"
	"fmt"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/db"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/logger"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PendingRegistrationRepository struct {
	repo *MongoRepository[models.PendingRegistration]
}

func NewPendingRegistrationRepository() *PendingRegistrationRepository {
	collection := db.MDB.Database.Collection(consts.PendingRegistrationsCollection)
	return &PendingRegistrationRepository{repo: NewMongoRepository[models.PendingRegistration](collection)}
}

func (r *PendingRegistrationRepository) InsertPendingRegistration(ctx context.Context, reg models.PendingRegistration) error {
	_, err := r.repo.Create(reg)
	if err != nil {
		logger.Error(ctx, "pendingRegistrations : Error while inserting %v", err.Error())
		return fmt.Errorf("pendingRegistrations : error while inserting %v", err.Error())
	}
	return nil
}

func (r *PendingRegistrationRepository) PendingRegistrationByRequestID(ctx context.Context, requestID string) (*models.PendingRegistration, error) {
	reg, err := r.repo.Read(bson.M{"requestId": requestID})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (r *PendingRegistrationRepository) DeletePendingRegistration(ctx context.Context, requestID string) error {
	return r.repo.Delete(bson.M{"requestId": requestID})
}
