package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akkor/hotel-booking-api/internal/core/domain"
	"github.com/akkor/hotel-booking-api/internal/core/ports"
)

const collectionHotels = "hotels"

type HotelRepository struct {
	col *mongo.Collection
}

func NewHotelRepository(db *mongo.Database) *HotelRepository {
	return &HotelRepository{col: db.Collection(collectionHotels)}
}

type mongoHotel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Location    string             `bson:"location"`
	Description string             `bson:"description"`
	PictureList []string           `bson:"picture_list"`
	Owner       string             `bson:"owner"`
}

func (mh *mongoHotel) toDomain() *domain.Hotel {
	return &domain.Hotel{
		ID:          mh.ID.Hex(),
		Name:        mh.Name,
		Location:    mh.Location,
		Description: mh.Description,
		PictureList: mh.PictureList,
		Owner:       mh.Owner,
	}
}

func (r *HotelRepository) Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoHotel{
		ID:          primitive.NewObjectID(),
		Name:        hotel.Name,
		Location:    hotel.Location,
		Description: hotel.Description,
		PictureList: hotel.PictureList,
		Owner:       hotel.Owner,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert hotel: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id string) (*domain.Hotel, error) {
	oid, err := objectIDFromHex(id, domain.ErrHotelNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mh mongoHotel
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mh); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	return mh.toDomain(), nil
}

// Update applies the non-nil fields of patch with $set and returns the
// updated document. A concurrent delete between the caller's existence check
// and this write surfaces as ErrHotelNotFound.
func (r *HotelRepository) Update(ctx context.Context, id string, patch ports.HotelPatch) (*domain.Hotel, error) {
	oid, err := objectIDFromHex(id, domain.ErrHotelNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.PictureList != nil {
		set["picture_list"] = *patch.PictureList
	}

	if len(set) == 0 {
		// Empty patch: re-read so the caller still gets current state.
		return r.FindByID(ctx, id)
	}

	var mh mongoHotel
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mh)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("update hotel: %w", err)
	}
	return mh.toDomain(), nil
}

// Delete removes the listing. A zero deleted count reads as not found, which
// also makes repeated deletes idempotent at the error level.
func (r *HotelRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id, domain.ErrHotelNotFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete hotel: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

// SearchByName matches names case-insensitively on a literal substring. The
// needle is regex-quoted so metacharacters in user input cannot widen the
// match.
func (r *HotelRepository) SearchByName(ctx context.Context, name string, page, limit int) ([]*domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("search hotels: %w", err)
	}
	defer cur.Close(ctx)

	var hotels []*domain.Hotel
	for cur.Next(ctx) {
		var mh mongoHotel
		if err := cur.Decode(&mh); err != nil {
			return nil, fmt.Errorf("decode hotel: %w", err)
		}
		hotels = append(hotels, mh.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("search hotels: %w", err)
	}
	return hotels, nil
}
