package store

import (
	"context"
	"fmt"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/db"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/logger"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AvailableLoanRepository struct {
	repo *MongoRepository[models.AvailableLoan]
}

func NewAvailableLoanRepository() *AvailableLoanRepository {
	collection := db.MDB.Database.Collection(consts.AvailableLoansCollection)
	return &AvailableLoanRepository{repo: NewMongoRepository[models.AvailableLoan](collection)}
}

func (r *AvailableLoanRepository) InsertAvailableLoan(ctx context.Context, loan models.AvailableLoan) error {
	_, err := r.repo.Create(loan)
	if err != nil {
		logger.Error(ctx, "availableLoans : Error while inserting %v", err.Error())
		return fmt.Errorf("availableLoans : error while inserting %v", err.Error())
	}
	return nil
}

func (r *AvailableLoanRepository) AvailableLoanByID(ctx context.Context, id primitive.ObjectID) (*models.AvailableLoan, error) {
	loan, err := r.repo.Read(bson.M{"_id": id})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorAvailableLoanNotFound
		}
		return nil, err
	}
	return &loan, nil
}

func (r *AvailableLoanRepository) AvailableLoans(ctx context.Context, limit int64) ([]models.AvailableLoan, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return r.repo.FindWithOptions(bson.M{"status": consts.AvailableLoanAvailable}, opts)
}

// TakeAvailableLoan flips available -> taken, recording the taker. The false
// return means another borrower won the race or the id does not exist.
func (r *AvailableLoanRepository) TakeAvailableLoan(ctx context.Context, id primitive.ObjectID, takerAddress string) (bool, error) {
	matched, err := r.repo.UpdateIf(
		bson.M{"_id": id, "status": consts.AvailableLoanAvailable},
		bson.M{"$set": bson.M{"status": consts.AvailableLoanTaken, "takenBy": takerAddress}},
	)
	if err != nil {
		logger.Error(ctx, "availableLoans : Error while taking %v", err.Error())
		return false, err
	}
	return matched > 0, nil
}
