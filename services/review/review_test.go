package review

import (
	"errors"
	"testing"
	"time"

	"tundavala/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeReviewRepo struct {
	reviews map[string]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[string]*models.Review{}}
}

func (r *fakeReviewRepo) GetByBookingAndTourist(bookingID, touristID string) (*models.Review, error) {
	for _, rv := range r.reviews {
		if rv.BookingID == bookingID && rv.TouristID == touristID {
			snapshot := *rv
			return &snapshot, nil
		}
	}
	return nil, nil
}

func (r *fakeReviewRepo) GetByGuide(guideID string) ([]models.Review, error) {
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.GuideID == guideID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) GetByPackage(packageID string) ([]models.Review, error) {
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.PackageID == packageID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	snapshot := *review
	r.reviews[review.ID] = &snapshot
	return nil
}

func (r *fakeReviewRepo) UpdateFields(id string, fields bson.M) error {
	rv, ok := r.reviews[id]
	if !ok {
		return errors.New("review not found")
	}
	if v, ok := fields["rating"].(int); ok {
		rv.Rating = v
	}
	if v, ok := fields["comment"].(string); ok {
		rv.Comment = v
	}
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	return b, nil
}
func (r *fakeBookingRepo) GetByTourist(id string) ([]models.Booking, error) { return nil, nil }
func (r *fakeBookingRepo) GetByGuide(id string) ([]models.Booking, error)   { return nil, nil }
func (r *fakeBookingRepo) GetAll() ([]models.Booking, error)                { return nil, nil }
func (r *fakeBookingRepo) Create(b *models.Booking) error                   { return nil }
func (r *fakeBookingRepo) UpdateStatus(id, exp, to string) (bool, error)    { return false, nil }
func (r *fakeBookingRepo) GetStalePending(cutoff time.Time) ([]models.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) Count() (int64, error) { return 0, nil }

type fakeGuideRepo struct {
	updates map[string]bson.M
}

func (r *fakeGuideRepo) GetByID(id string) (*models.Guide, error) { return nil, nil }
func (r *fakeGuideRepo) GetAll() ([]models.Guide, error)          { return nil, nil }
func (r *fakeGuideRepo) Search(c models.GuideSearchCriteria) ([]models.Guide, error) {
	return nil, nil
}
func (r *fakeGuideRepo) Create(g *models.Guide) error { return nil }
func (r *fakeGuideRepo) UpdateFields(id string, fields bson.M) error {
	if r.updates == nil {
		r.updates = map[string]bson.M{}
	}
	r.updates[id] = fields
	return nil
}
func (r *fakeGuideRepo) Delete(id string) error      { return nil }
func (r *fakeGuideRepo) Count() (int64, error)       { return 0, nil }
func (r *fakeGuideRepo) CountActive() (int64, error) { return 0, nil }

type fakeTourRepo struct {
	updates map[string]bson.M
}

func (r *fakeTourRepo) GetByID(id string) (*models.TourPackage, error) { return nil, nil }
func (r *fakeTourRepo) GetAllActive(location string) ([]models.TourPackage, error) {
	return nil, nil
}
func (r *fakeTourRepo) GetByGuide(id string) ([]models.TourPackage, error) { return nil, nil }
func (r *fakeTourRepo) Create(p *models.TourPackage) error                 { return nil }
func (r *fakeTourRepo) UpdateFields(id string, fields bson.M) error {
	if r.updates == nil {
		r.updates = map[string]bson.M{}
	}
	r.updates[id] = fields
	return nil
}
func (r *fakeTourRepo) Delete(id string) error { return nil }

type fakeUserRepo struct{}

func (fakeUserRepo) GetByID(id string) (*models.User, error) {
	return &models.User{ID: id, Name: "Marta Domingos"}, nil
}
func (fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (fakeUserRepo) GetAll() ([]models.User, error)                { return nil, nil }
func (fakeUserRepo) Create(u *models.User) error                   { return nil }
func (fakeUserRepo) UpdateFields(id string, fields bson.M) error   { return nil }
func (fakeUserRepo) Delete(id string) error                        { return nil }
func (fakeUserRepo) CountByRole(role string) (int64, error)        { return 0, nil }
func (fakeUserRepo) GetByIDWithProjection(id string, p bson.M) (*models.User, error) {
	return nil, nil
}

func newService() (*DefaultReviewService, *fakeReviewRepo, *fakeGuideRepo, *fakeTourRepo) {
	reviews := newFakeReviewRepo()
	guides := &fakeGuideRepo{}
	tours := &fakeTourRepo{}
	bookings := &fakeBookingRepo{bookings: map[string]*models.Booking{
		"b1": {ID: "b1", TouristID: "t1", GuideID: "g1", PackageID: "p1", Status: models.BookingFinished},
		"b2": {ID: "b2", TouristID: "t1", GuideID: "g1", Status: models.BookingConfirmed},
	}}
	svc := &DefaultReviewService{
		Repo: reviews, Bookings: bookings, Guides: guides, Tours: tours, Users: fakeUserRepo{},
	}
	return svc, reviews, guides, tours
}

func TestSubmitCreatesReviewAndAggregates(t *testing.T) {
	svc, reviews, guides, tours := newService()

	r, err := svc.Submit("t1", models.ReviewInput{BookingID: "b1", Rating: 4, Comment: "Guia excelente, recomendo"})
	require.NoError(t, err)
	assert.Equal(t, "g1", r.GuideID)
	assert.Equal(t, "p1", r.PackageID)
	assert.Equal(t, "Marta Domingos", r.TouristName)
	assert.Len(t, reviews.reviews, 1)

	assert.Equal(t, 4.0, guides.updates["g1"]["rating"])
	assert.Equal(t, 1, guides.updates["g1"]["review_count"])
	assert.Equal(t, 4.0, tours.updates["p1"]["rating"])
	assert.Equal(t, 1, tours.updates["p1"]["review_count"])
}

func TestSubmitUpsertsInsteadOfDuplicating(t *testing.T) {
	svc, reviews, guides, _ := newService()

	first, err := svc.Submit("t1", models.ReviewInput{BookingID: "b1", Rating: 2, Comment: "Atraso de duas horas"})
	require.NoError(t, err)

	second, err := svc.Submit("t1", models.ReviewInput{BookingID: "b1", Rating: 5, Comment: "Afinal correu muito bem"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, reviews.reviews, 1)
	assert.Equal(t, 5, reviews.reviews[first.ID].Rating)

	// Count stays at one and the mean tracks the edited rating.
	assert.Equal(t, 1, guides.updates["g1"]["review_count"])
	assert.Equal(t, 5.0, guides.updates["g1"]["rating"])
}

func TestSubmitRejectsUnfinishedBooking(t *testing.T) {
	svc, reviews, _, _ := newService()

	_, err := svc.Submit("t1", models.ReviewInput{BookingID: "b2", Rating: 5, Comment: "Ainda nem aconteceu"})
	assert.True(t, errors.Is(err, ErrBookingNotReviewable))
	assert.Empty(t, reviews.reviews)
}

func TestSubmitRejectsForeignBooking(t *testing.T) {
	svc, reviews, _, _ := newService()

	_, err := svc.Submit("t2", models.ReviewInput{BookingID: "b1", Rating: 5, Comment: "Reserva de outra pessoa"})
	assert.True(t, errors.Is(err, ErrBookingNotReviewable))
	assert.Empty(t, reviews.reviews)
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 4.0, AverageRating([]models.Review{{Rating: 3}, {Rating: 5}}))
	assert.Equal(t, 3.7, AverageRating([]models.Review{{Rating: 3}, {Rating: 4}, {Rating: 4}}))
}
