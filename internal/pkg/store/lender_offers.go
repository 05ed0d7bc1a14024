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

type LenderOfferRepository struct {
	repo *MongoRepository[models.LenderOffer]
}

func NewLenderOfferRepository() *LenderOfferRepository {
	collection := db.MDB.Database.Collection(consts.LenderOffersCollection)
	return &LenderOfferRepository{repo: NewMongoRepository[models.LenderOffer](collection)}
}

func (r *LenderOfferRepository) InsertLenderOffer(ctx context.Context, offer models.LenderOffer) error {
	_, err := r.repo.Create(offer)
	if err != nil {
		logger.Error(ctx, "lenderOffers : Error while inserting %v", err.Error())
		return fmt.Errorf("lenderOffers : error while inserting %v", err.Error())
	}
	return nil
}

func (r *LenderOfferRepository) LenderOfferByID(ctx context.Context, id primitive.ObjectID) (*models.LenderOffer, error) {
	offer, err := r.repo.Read(bson.M{"_id": id})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorOfferNotFound
		}
		return nil, err
	}
	return &offer, nil
}

func (r *LenderOfferRepository) ActiveLenderOffers(ctx context.Context, limit int64) ([]models.LenderOffer, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return r.repo.FindWithOptions(bson.M{"status": consts.OfferActive}, opts)
}

func (r *LenderOfferRepository) LenderOffersByLender(ctx context.Context, lenderAddress string) ([]models.LenderOffer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.repo.FindWithOptions(bson.M{"lenderAddress": lenderAddress}, opts)
}

// DeactivateOffer moves an offer active -> inactive. One-way transition.
func (r *LenderOfferRepository) DeactivateOffer(ctx context.Context, id primitive.ObjectID) (bool, error) {
	matched, err := r.repo.UpdateIf(
		bson.M{"_id": id, "status": consts.OfferActive},
		bson.M{"$set": bson.M{"status": consts.OfferInactive}},
	)
	if err != nil {
		logger.Error(ctx, "lenderOffers : Error while deactivating %v", err.Error())
		return false, err
	}
	return matched > 0, nil
}
