package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopspring/decimal"

	"product-catalog/internal/models"
)

const (
	writeTimeout = 5 * time.Second
	readTimeout  = 3 * time.Second
	queryTimeout = 10 * time.Second
)

// Dial connects to MongoDB and verifies the connection with a ping.
func Dial(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}
	return client, nil
}

// MongoStore persists products in a MongoDB collection.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection("products")}
}

// productDoc is the stored shape of a product. The price is kept as its
// decimal string so values round-trip exactly.
type productDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       string             `bson:"price"`
	Available   bool               `bson:"available"`
	Category    string             `bson:"category"`
}

func toDoc(p *models.Product) (*productDoc, error) {
	doc := &productDoc{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		Available:   p.Available,
		Category:    p.Category.String(),
	}
	if p.ID != "" {
		objID, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return nil, ErrNotFound
		}
		doc.ID = objID
	}
	return doc, nil
}

func fromDoc(doc *productDoc) (*models.Product, error) {
	price, err := decimal.NewFromString(doc.Price)
	if err != nil {
		return nil, fmt.Errorf("decoding stored price %q: %w", doc.Price, err)
	}
	return &models.Product{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Description: doc.Description,
		Price:       price,
		Available:   doc.Available,
		Category:    models.ParseCategory(doc.Category),
	}, nil
}

func (s *MongoStore) Create(ctx context.Context, product *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	product.ID = ""
	doc, err := toDoc(product)
	if err != nil {
		return err
	}
	doc.ID = primitive.NewObjectID()

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}
	product.ID = doc.ID.Hex()
	return nil
}

func (s *MongoStore) Find(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc productDoc
	if err := s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("finding product: %w", err)
	}
	return fromDoc(&doc)
}

func (s *MongoStore) Update(ctx context.Context, product *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	doc, err := toDoc(product)
	if err != nil {
		return err
	}

	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) All(ctx context.Context) ([]models.Product, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoStore) FindByName(ctx context.Context, name string) ([]models.Product, error) {
	return s.find(ctx, bson.M{"name": name})
}

func (s *MongoStore) FindByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	return s.find(ctx, bson.M{"category": category.String()})
}

func (s *MongoStore) FindByAvailability(ctx context.Context, available bool) ([]models.Product, error) {
	return s.find(ctx, bson.M{"available": available})
}

func (s *MongoStore) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding product: %w", err)
		}
		product, err := fromDoc(&doc)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}
	return products, nil
}
