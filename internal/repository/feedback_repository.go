package repository

import (
	"context"
	"time"

	"panduan-karier/internal/database"

	"github.com/google/uuid"
)

type Feedback struct {
	ID                 uuid.UUID
	PersonaName        string
	TopThree           string // joined category labels, e.g. "RAS"
	Accuracy           int
	Satisfaction       int
	MostInteresting    string
	AdditionalComments string
	TopMajors          []string
	TopCareers         []string
	UserAgent          string
	ClientIP           string
	CreatedAt          time.Time
}

type PopularRecommendation struct {
	Name  string
	Count int64
}

type FeedbackAnalytics struct {
	TotalFeedback   int64
	AvgAccuracy     float64
	AvgSatisfaction float64
	PopularMajors   []PopularRecommendation
	PopularCareers  []PopularRecommendation
}

type FeedbackRepository interface {
	Insert(ctx context.Context, fb Feedback) error
	Analytics(ctx context.Context) (FeedbackAnalytics, error)
}

type PostgresFeedbackRepository struct {
	db database.DB
}

func NewPostgresFeedbackRepository(db database.DB) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

func (r *PostgresFeedbackRepository) Insert(ctx context.Context, fb Feedback) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	_, err = tx.Exec(
		ctx,
		`INSERT INTO feedback
			(id, persona_name, top_three, accuracy, satisfaction, most_interesting, additional_comments, user_agent, client_ip, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		fb.ID, fb.PersonaName, fb.TopThree, fb.Accuracy, fb.Satisfaction,
		fb.MostInteresting, fb.AdditionalComments, fb.UserAgent, fb.ClientIP, fb.CreatedAt,
	)
	if err != nil {
		return err
	}

	insertRecs := func(kind string, names []string) error {
		for _, name := range names {
			if name == "" {
				continue
			}
			_, err := tx.Exec(
				ctx,
				`INSERT INTO feedback_recommendations (id, feedback_id, kind, name) VALUES ($1, $2, $3, $4)`,
				uuid.New(), fb.ID, kind, name,
			)
			if err != nil {
				return err
			}
		}
		return nil
	}
	if err := insertRecs("major", fb.TopMajors); err != nil {
		return err
	}
	if err := insertRecs("career", fb.TopCareers); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresFeedbackRepository) Analytics(ctx context.Context) (FeedbackAnalytics, error) {
	var out FeedbackAnalytics

	row := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*), COALESCE(AVG(accuracy), 0), COALESCE(AVG(satisfaction), 0) FROM feedback`,
	)
	if err := row.Scan(&out.TotalFeedback, &out.AvgAccuracy, &out.AvgSatisfaction); err != nil {
		return FeedbackAnalytics{}, err
	}

	popular := func(kind string) ([]PopularRecommendation, error) {
		rows, err := r.db.Query(
			ctx,
			`SELECT name, COUNT(*) AS cnt
			 FROM feedback_recommendations
			 WHERE kind = $1
			 GROUP BY name
			 ORDER BY cnt DESC, name ASC
			 LIMIT 10`,
			kind,
		)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		items := make([]PopularRecommendation, 0, 10)
		for rows.Next() {
			var p PopularRecommendation
			if err := rows.Scan(&p.Name, &p.Count); err != nil {
				return nil, err
			}
			items = append(items, p)
		}
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return items, nil
	}

	majors, err := popular("major")
	if err != nil {
		return FeedbackAnalytics{}, err
	}
	careers, err := popular("career")
	if err != nil {
		return FeedbackAnalytics{}, err
	}
	out.PopularMajors = majors
	out.PopularCareers = careers

	return out, nil
}
