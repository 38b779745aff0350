package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hostelhub/hostel-api/internal/core/domain"
)

const applicationsCollection = "applications"

type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(applicationsCollection)}
}

type mongoApplication struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	FullName        string             `bson:"full_name"`
	Gender          string             `bson:"gender"`
	DateOfBirth     string             `bson:"dob"`
	ContactNumber   string             `bson:"contact_number"`
	Email           string             `bson:"email"`
	Address         string             `bson:"address"`
	Course          string             `bson:"course"`
	GuardianName    string             `bson:"guardian_name"`
	GuardianContact string             `bson:"guardian_contact"`
	RoomPreference  string             `bson:"room_preference"`
	DocumentPath    string             `bson:"document_path,omitempty"`
	Role            string             `bson:"role"`
	CreatedAt       int64              `bson:"created_at"`
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	doc := mongoApplication{
		FullName:        app.FullName,
		Gender:          app.Gender,
		DateOfBirth:     app.DateOfBirth,
		ContactNumber:   app.ContactNumber,
		Email:           app.Email,
		Address:         app.Address,
		Course:          app.Course,
		GuardianName:    app.GuardianName,
		GuardianContact: app.GuardianContact,
		RoomPreference:  app.RoomPreference,
		DocumentPath:    app.DocumentPath,
		Role:            app.Role,
		CreatedAt:       app.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}

	created := *app
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]*domain.Application, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cur.Close(ctx)

	var apps []*domain.Application
	for cur.Next(ctx) {
		var ma mongoApplication
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		apps = append(apps, &domain.Application{
			ID:              ma.ID.Hex(),
			FullName:        ma.FullName,
			Gender:          ma.Gender,
			DateOfBirth:     ma.DateOfBirth,
			ContactNumber:   ma.ContactNumber,
			Email:           ma.Email,
			Address:         ma.Address,
			Course:          ma.Course,
			GuardianName:    ma.GuardianName,
			GuardianContact: ma.GuardianContact,
			RoomPreference:  ma.RoomPreference,
			DocumentPath:    ma.DocumentPath,
			Role:            ma.Role,
			CreatedAt:       unixToTime(ma.CreatedAt),
		})
	}
	return apps, cur.Err()
}
