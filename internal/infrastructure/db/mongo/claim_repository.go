package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/prestige-worldwide/claims-intake/internal/core/domain"
	"github.com/prestige-worldwide/claims-intake/internal/core/ports"
)

const claimsCollection = "claims"

// matchAny is the wildcard pattern the insurer search substitutes for
// omitted fields.
var matchAny = primitive.Regex{Pattern: ".*"}

type ClaimRepository struct {
	col *mongo.Collection
}

func NewClaimRepository(db *mongo.Database) *ClaimRepository {
	return &ClaimRepository{col: db.Collection(claimsCollection)}
}

// Insert stores a new claim document keyed by its UUID.
func (r *ClaimRepository) Insert(ctx context.Context, claim *domain.Claim) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, claim)
	return err
}

func (r *ClaimRepository) FindByID(ctx context.Context, id string) (*domain.Claim, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var claim domain.Claim
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&claim)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, err
	}
	return &claim, nil
}

// Find returns all claims matching filter. In wildcard mode, empty fields are
// matched with a catch-all regex; in exact mode every field is an equality
// match.
func (r *ClaimRepository) Find(ctx context.Context, filter ports.ClaimFilter) ([]domain.Claim, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{
		"firstName":    fieldMatcher(filter.FirstName, filter.Wildcard),
		"lastName":     fieldMatcher(filter.LastName, filter.Wildcard),
		"policyNumber": fieldMatcher(filter.PolicyNumber, filter.Wildcard),
	}

	cur, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	claims := make([]domain.Claim, 0)
	if err := cur.All(ctx, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func fieldMatcher(value string, wildcard bool) interface{} {
	if wildcard && value == "" {
		return matchAny
	}
	return value
}

// EnsureIndexes creates the secondary indexes used by claim searches.
func (r *ClaimRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "policyNumber", Value: 1}}},
		{Keys: bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
