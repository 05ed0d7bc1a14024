package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/db"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/logger"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LoanRequestRepository struct {
	repo *MongoRepository[models.LoanRequest]
}

func NewLoanRequestRepository() *LoanRequestRepository {
	collection := db.MDB.Database.Collection(consts.LoanRequestsCollection)
	return &LoanRequestRepository{repo: NewMongoRepository[models.LoanRequest](collection)}
}

func (r *LoanRequestRepository) InsertLoanRequest(ctx context.Context, request models.LoanRequest) error {
	_, err := r.repo.Create(request)
	if err != nil {
		logger.Error(ctx, "loanRequests : Error while inserting %v", err.Error())
		return fmt.Errorf("loanRequests : error while inserting %v", err.Error())
	}
	return nil
}

func (r *LoanRequestRepository) LoanRequestByID(ctx context.Context, id primitive.ObjectID) (*models.LoanRequest, error) {
	request, err := r.repo.Read(bson.M{"_id": id})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorLoanRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *LoanRequestRepository) OpenLoanRequests(ctx context.Context, limit int64) ([]models.LoanRequest, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return r.repo.FindWithOptions(bson.M{"status": consts.LoanRequestPending}, opts)
}

func (r *LoanRequestRepository) LoanRequestsByBorrower(ctx context.Context, borrowerAddress string) ([]models.LoanRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.repo.FindWithOptions(bson.M{"borrowerAddress": borrowerAddress}, opts)
}

// CountRecentByBorrower feeds the new-credit factor of the score engine.
func (r *LoanRequestRepository) CountRecentByBorrower(ctx context.Context, borrowerAddress string, since time.Time) (int64, error) {
	return r.repo.CountDocuments(bson.M{
		"borrowerAddress": borrowerAddress,
		"createdAt":       bson.M{"$gt": since},
	})
}

// TransitionStatus flips a request between states with a conditional update.
// set must carry the target status. The returned bool is false when the
// request was not in fromStatus, which callers treat as a rejected transition.
func (r *LoanRequestRepository) TransitionStatus(ctx context.Context, id primitive.ObjectID, fromStatus string, set bson.M) (bool, error) {
	matched, err := r.repo.UpdateIf(
		bson.M{"_id": id, "status": fromStatus},
		bson.M{"$set": set},
	)
	if err != nil {
		logger.Error(ctx, "loanRequests : Error while transitioning %v", err.Error())
		return false, err
	}
	return matched > 0, nil
}

func (r *LoanRequestRepository) MarkPublishedToKafka(ctx context.Context, id primitive.ObjectID) error {
	err := r.repo.Update(bson.M{"_id": id}, bson.M{"publishedToKafka": true})
	if err != nil {
		logger.Error(ctx, "loanRequests : Error while updating kafka flag %v", err.Error())
	}
	return err
}
