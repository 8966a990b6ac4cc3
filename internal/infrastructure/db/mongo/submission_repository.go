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
	leadsCollection        = "leads"
	messagesCollection     = "contact_messages"
	applicationsCollection = "job_applications"
	fraudReportsCollection = "fraud_reports"
)

// SubmissionRepository persists the visitor intake collections.
type SubmissionRepository struct {
	leads        *mongo.Collection
	messages     *mongo.Collection
	applications *mongo.Collection
	fraudReports *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{
		leads:        db.Collection(leadsCollection),
		messages:     db.Collection(messagesCollection),
		applications: db.Collection(applicationsCollection),
		fraudReports: db.Collection(fraudReportsCollection),
	}
}

type leadDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Email           string             `bson:"email"`
	Phone           string             `bson:"phone,omitempty"`
	ServiceInterest string             `bson:"service_interest,omitempty"`
	Message         string             `bson:"message,omitempty"`
	CreatedAt       int64              `bson:"created_at"`
}

type messageDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject,omitempty"`
	Body      string             `bson:"body"`
	CreatedAt int64              `bson:"created_at"`
}

type applicationDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	Phone      string             `bson:"phone,omitempty"`
	Position   string             `bson:"position"`
	CoverNote  string             `bson:"cover_note,omitempty"`
	ResumePath string             `bson:"resume_path,omitempty"`
	CreatedAt  int64              `bson:"created_at"`
}

type fraudReportDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ReporterName  string             `bson:"reporter_name"`
	ReporterEmail string             `bson:"reporter_email"`
	Description   string             `bson:"description"`
	EvidencePath  string             `bson:"evidence_path,omitempty"`
	CreatedAt     int64              `bson:"created_at"`
}

func (r *SubmissionRepository) InsertLead(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	res, err := r.leads.InsertOne(ctx, leadDoc{
		Name:            l.Name,
		Email:           l.Email,
		Phone:           l.Phone,
		ServiceInterest: l.ServiceInterest,
		Message:         l.Message,
		CreatedAt:       l.CreatedAt.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert lead: %w", err)
	}
	created := *l
	created.ID = insertedHex(res)
	return &created, nil
}

func (r *SubmissionRepository) InsertMessage(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	res, err := r.messages.InsertOne(ctx, messageDoc{
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Body:      m.Body,
		CreatedAt: m.CreatedAt.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	created := *m
	created.ID = insertedHex(res)
	return &created, nil
}

func (r *SubmissionRepository) InsertApplication(ctx context.Context, a *domain.JobApplication) (*domain.JobApplication, error) {
	res, err := r.applications.InsertOne(ctx, applicationDoc{
		Name:       a.Name,
		Email:      a.Email,
		Phone:      a.Phone,
		Position:   a.Position,
		CoverNote:  a.CoverNote,
		ResumePath: a.ResumePath,
		CreatedAt:  a.CreatedAt.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}
	created := *a
	created.ID = insertedHex(res)
	return &created, nil
}

func (r *SubmissionRepository) InsertFraudReport(ctx context.Context, f *domain.FraudReport) (*domain.FraudReport, error) {
	res, err := r.fraudReports.InsertOne(ctx, fraudReportDoc{
		ReporterName:  f.ReporterName,
		ReporterEmail: f.ReporterEmail,
		Description:   f.Description,
		EvidencePath:  f.EvidencePath,
		CreatedAt:     f.CreatedAt.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert fraud report: %w", err)
	}
	created := *f
	created.ID = insertedHex(res)
	return &created, nil
}

func (r *SubmissionRepository) ListLeads(ctx context.Context) ([]*domain.Lead, error) {
	cursor, err := newestFirst(ctx, r.leads)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Lead
	for cursor.Next(ctx) {
		var doc leadDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode lead: %w", err)
		}
		out = append(out, &domain.Lead{
			ID:              doc.ID.Hex(),
			Name:            doc.Name,
			Email:           doc.Email,
			Phone:           doc.Phone,
			ServiceInterest: doc.ServiceInterest,
			Message:         doc.Message,
			CreatedAt:       unixToTime(doc.CreatedAt),
		})
	}
	return out, cursor.Err()
}

func (r *SubmissionRepository) ListMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	cursor, err := newestFirst(ctx, r.messages)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.ContactMessage
	for cursor.Next(ctx) {
		var doc messageDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		out = append(out, &domain.ContactMessage{
			ID:        doc.ID.Hex(),
			Name:      doc.Name,
			Email:     doc.Email,
			Subject:   doc.Subject,
			Body:      doc.Body,
			CreatedAt: unixToTime(doc.CreatedAt),
		})
	}
	return out, cursor.Err()
}

func (r *SubmissionRepository) ListApplications(ctx context.Context) ([]*domain.JobApplication, error) {
	cursor, err := newestFirst(ctx, r.applications)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.JobApplication
	for cursor.Next(ctx) {
		var doc applicationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		out = append(out, &domain.JobApplication{
			ID:         doc.ID.Hex(),
			Name:       doc.Name,
			Email:      doc.Email,
			Phone:      doc.Phone,
			Position:   doc.Position,
			CoverNote:  doc.CoverNote,
			ResumePath: doc.ResumePath,
			CreatedAt:  unixToTime(doc.CreatedAt),
		})
	}
	return out, cursor.Err()
}

func (r *SubmissionRepository) ListFraudReports(ctx context.Context) ([]*domain.FraudReport, error) {
	cursor, err := newestFirst(ctx, r.fraudReports)
	if err != nil {
		return nil, fmt.Errorf("list fraud reports: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.FraudReport
	for cursor.Next(ctx) {
		var doc fraudReportDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode fraud report: %w", err)
		}
		out = append(out, &domain.FraudReport{
			ID:            doc.ID.Hex(),
			ReporterName:  doc.ReporterName,
			ReporterEmail: doc.ReporterEmail,
			Description:   doc.Description,
			EvidencePath:  doc.EvidencePath,
			CreatedAt:     unixToTime(doc.CreatedAt),
		})
	}
	return out, cursor.Err()
}

func (r *SubmissionRepository) Delete(ctx context.Context, kind domain.SubmissionKind, id string) error {
	coll := r.collectionFor(kind)
	if coll == nil {
		return domain.ErrNotFound
	}
	return deleteByID(ctx, coll, id, string(kind))
}

func (r *SubmissionRepository) collectionFor(kind domain.SubmissionKind) *mongo.Collection {
	switch kind {
	case domain.KindLead:
		return r.leads
	case domain.KindMessage:
		return r.messages
	case domain.KindApplication:
		return r.applications
	case domain.KindFraudReport:
		return r.fraudReports
	default:
		return nil
	}
}

func newestFirst(ctx context.Context, coll *mongo.Collection) (*mongo.Cursor, error) {
	return coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func insertedHex(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
