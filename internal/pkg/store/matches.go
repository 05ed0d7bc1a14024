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
)

type MatchRepository struct {
	repo *MongoRepository[models.Match]
}

func NewMatchRepository() *MatchRepository {
	collection := db.MDB.Database.Collection(consts.MatchesCollection)
	return &MatchRepository{repo: NewMongoRepository[models.Match](collection)}
}

func (r *MatchRepository) InsertMatch(ctx context.Context, match models.Match) error {
	_, err := r.repo.Create(match)
	if err != nil {
		logger.Error(ctx, "matches : Error while inserting %v", err.Error())
		return fmt.Errorf("matches : error while inserting %v", err.Error())
	}
	return nil
}

func (r *MatchRepository) MatchByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error) {
	match, err := r.repo.Read(bson.M{"_id": id})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

// TransitionStatus moves a match from one status to another atomically. The
// false return means the match was not in fromStatus anymore.
func (r *MatchRepository) TransitionStatus(ctx context.Context, id primitive.ObjectID, fromStatus, toStatus string) (bool, error) {
	matched, err := r.repo.UpdateIf(
		bson.M{"_id": id, "status": fromStatus},
		bson.M{"$set": bson.M{"status": toStatus}},
	)
	if err != nil {
		logger.Error(ctx, "matches : Error while updating status %v", err.Error())
		return false, err
	}
	return matched > 0, nil
}
