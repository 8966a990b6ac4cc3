package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
)

const (
	servicesCollection     = "services"
	testimonialsCollection = "testimonials"
	contactInfoCollection  = "contact_info"
	legalPagesCollection   = "legal_pages"
)

// ContentRepository persists the moderated site content collections.
type ContentRepository struct {
	services     *mongo.Collection
	testimonials *mongo.Collection
	contactInfo  *mongo.Collection
	legalPages   *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{
		services:     db.Collection(servicesCollection),
		testimonials: db.Collection(testimonialsCollection),
		contactInfo:  db.Collection(contactInfoCollection),
		legalPages:   db.Collection(legalPagesCollection),
	}
}

type serviceDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Summary     string             `bson:"summary"`
	Description string             `bson:"description,omitempty"`
	Tags        []string           `bson:"tags,omitempty"`
	Active      bool               `bson:"active"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (d serviceDoc) toDomain() *domain.ServiceOffering {
	return &domain.ServiceOffering{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Summary:     d.Summary,
		Description: d.Description,
		Tags:        d.Tags,
		Active:      d.Active,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}

func (r *ContentRepository) CreateService(ctx context.Context, s *domain.ServiceOffering) (*domain.ServiceOffering, error) {
	doc := serviceDoc{
		Title:       s.Title,
		Summary:     s.Summary,
		Description: s.Description,
		Tags:        s.Tags,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt.Unix(),
		UpdatedAt:   s.UpdatedAt.Unix(),
	}
	res, err := r.services.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	created := *s
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ContentRepository) UpdateService(ctx context.Context, s *domain.ServiceOffering) (*domain.ServiceOffering, error) {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	update := bson.M{"$set": bson.M{
		"title":       s.Title,
		"summary":     s.Summary,
		"description": s.Description,
		"tags":        s.Tags,
		"active":      s.Active,
		"updated_at":  s.UpdatedAt.Unix(),
	}}
	res, err := r.services.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (r *ContentRepository) DeleteService(ctx context.Context, id string) error {
	return deleteByID(ctx, r.services, id, "service")
}

func (r *ContentRepository) ListServices(ctx context.Context, activeOnly bool) ([]*domain.ServiceOffering, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cursor, err := r.services.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.ServiceOffering
	for cursor.Next(ctx) {
		var doc serviceDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode service: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

type testimonialDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Author     string             `bson:"author"`
	AuthorRole string             `bson:"author_role,omitempty"`
	Quote      string             `bson:"quote"`
	Approved   bool               `bson:"approved"`
	CreatedAt  int64              `bson:"created_at"`
}

func (d testimonialDoc) toDomain() *domain.Testimonial {
	return &domain.Testimonial{
		ID:         d.ID.Hex(),
		Author:     d.Author,
		AuthorRole: d.AuthorRole,
		Quote:      d.Quote,
		Approved:   d.Approved,
		CreatedAt:  unixToTime(d.CreatedAt),
	}
}

func (r *ContentRepository) CreateTestimonial(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	doc := testimonialDoc{
		Author:     t.Author,
		AuthorRole: t.AuthorRole,
		Quote:      t.Quote,
		Approved:   t.Approved,
		CreatedAt:  t.CreatedAt.Unix(),
	}
	res, err := r.testimonials.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert testimonial: %w", err)
	}
	created := *t
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ContentRepository) UpdateTestimonial(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	oid, err := primitive.ObjectIDFromHex(t.ID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	update := bson.M{"$set": bson.M{
		"author":      t.Author,
		"author_role": t.AuthorRole,
		"quote":       t.Quote,
		"approved":    t.Approved,
	}}
	res, err := r.testimonials.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update testimonial: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (r *ContentRepository) DeleteTestimonial(ctx context.Context, id string) error {
	return deleteByID(ctx, r.testimonials, id, "testimonial")
}

func (r *ContentRepository) ListTestimonials(ctx context.Context, approvedOnly bool) ([]*domain.Testimonial, error) {
	filter := bson.M{}
	if approvedOnly {
		filter["approved"] = true
	}
	cursor, err := r.testimonials.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Testimonial
	for cursor.Next(ctx) {
		var doc testimonialDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode testimonial: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

type contactInfoDoc struct {
	ID          string            `bson:"_id"`
	Email       string            `bson:"email"`
	Phone       string            `bson:"phone,omitempty"`
	Address     string            `bson:"address,omitempty"`
	SocialLinks map[string]string `bson:"social_links,omitempty"`
	UpdatedAt   int64             `bson:"updated_at"`
}

// contactInfoKey pins the singleton contact document to a fixed id.
const contactInfoKey = "site"

func (r *ContentRepository) GetContactInfo(ctx context.Context) (*domain.ContactInfo, error) {
	var doc contactInfoDoc
	if err := r.contactInfo.FindOne(ctx, bson.M{"_id": contactInfoKey}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get contact info: %w", err)
	}
	return &domain.ContactInfo{
		Email:       doc.Email,
		Phone:       doc.Phone,
		Address:     doc.Address,
		SocialLinks: doc.SocialLinks,
		UpdatedAt:   unixToTime(doc.UpdatedAt),
	}, nil
}

func (r *ContentRepository) PutContactInfo(ctx context.Context, info *domain.ContactInfo) error {
	doc := contactInfoDoc{
		ID:          contactInfoKey,
		Email:       info.Email,
		Phone:       info.Phone,
		Address:     info.Address,
		SocialLinks: info.SocialLinks,
		UpdatedAt:   info.UpdatedAt.Unix(),
	}
	_, err := r.contactInfo.ReplaceOne(ctx, bson.M{"_id": contactInfoKey}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("put contact info: %w", err)
	}
	return nil
}

type legalPageDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Slug      string             `bson:"slug"`
	Title     string             `bson:"title"`
	Body      string             `bson:"body"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (d legalPageDoc) toDomain() *domain.LegalPage {
	return &domain.LegalPage{
		ID:        d.ID.Hex(),
		Slug:      d.Slug,
		Title:     d.Title,
		Body:      d.Body,
		UpdatedAt: unixToTime(d.UpdatedAt),
	}
}

func (r *ContentRepository) UpsertLegalPage(ctx context.Context, p *domain.LegalPage) (*domain.LegalPage, error) {
	update := bson.M{"$set": bson.M{
		"slug":       p.Slug,
		"title":      p.Title,
		"body":       p.Body,
		"updated_at": p.UpdatedAt.Unix(),
	}}
	_, err := r.legalPages.UpdateOne(ctx, bson.M{"slug": p.Slug}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("upsert legal page: %w", err)
	}
	return r.GetLegalPage(ctx, p.Slug)
}

func (r *ContentRepository) DeleteLegalPage(ctx context.Context, slug string) error {
	res, err := r.legalPages.DeleteOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return fmt.Errorf("delete legal page: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ContentRepository) GetLegalPage(ctx context.Context, slug string) (*domain.LegalPage, error) {
	var doc legalPageDoc
	if err := r.legalPages.FindOne(ctx, bson.M{"slug": slug}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get legal page: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ContentRepository) ListLegalPages(ctx context.Context) ([]*domain.LegalPage, error) {
	cursor, err := r.legalPages.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "slug", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list legal pages: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.LegalPage
	for cursor.Next(ctx) {
		var doc legalPageDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode legal page: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id, what string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s: %w", what, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
