package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayhub_backend/internal/email"
	"stayhub_backend/internal/models"
	"stayhub_backend/internal/repositories"
)

// In-memory repositories backing the service tests. The db handle is passed
// through untouched, so tests run with a nil *gorm.DB.

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (r *fakeBookingRepo) add(b *models.Booking) *models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	r.bookings[b.ID] = b
	return b
}

func (r *fakeBookingRepo) Transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return fn(db)
}

func (r *fakeBookingRepo) Create(db *gorm.DB, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()
	cp := *booking
	r.bookings[booking.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) FindByID(db *gorm.DB, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, repositories.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) FindByRenter(db *gorm.DB, renterID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.RenterID == renterID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindByHost(db *gorm.DB, hostID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Property != nil && b.Property.HostID == hostID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) HasConfirmedOverlap(db *gorm.DB, propertyID, renterID string, checkIn, checkOut time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.PropertyID != propertyID || b.RenterID != renterID {
			continue
		}
		if b.Status != models.BookingStatusConfirmed {
			continue
		}
		if !b.CheckIn.After(checkOut) && !b.CheckOut.Before(checkIn) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) Save(db *gorm.DB, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *booking
	r.bookings[booking.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) CountByHost(db *gorm.DB, hostID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, b := range r.bookings {
		if b.Property != nil && b.Property.HostID == hostID {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) SumConfirmedRevenueByHost(db *gorm.DB, hostID string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, b := range r.bookings {
		if b.Property != nil && b.Property.HostID == hostID && b.Status == models.BookingStatusConfirmed {
			total += b.Property.Price
		}
	}
	return total, nil
}

type fakePropertyRepo struct {
	mu         sync.Mutex
	properties map[string]*models.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: map[string]*models.Property{}}
}

func (r *fakePropertyRepo) add(p *models.Property) *models.Property {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	r.properties[p.ID] = p
	return p
}

func (r *fakePropertyRepo) Create(db *gorm.DB, property *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	property.CreatedAt = time.Now()
	cp := *property
	r.properties[property.ID] = &cp
	return nil
}

func (r *fakePropertyRepo) FindByID(db *gorm.DB, id string) (*models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.properties[id]
	if !ok {
		return nil, repositories.ErrPropertyNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePropertyRepo) FindActiveByID(db *gorm.DB, id string) (*models.Property, error) {
	p, err := r.FindByID(db, id)
	if err != nil || !p.Status {
		return nil, repositories.ErrPropertyNotFound
	}
	return p, nil
}

func (r *fakePropertyRepo) FindActiveByIDForUpdate(db *gorm.DB, id string) (*models.Property, error) {
	return r.FindActiveByID(db, id)
}

func (r *fakePropertyRepo) FindAllActive(db *gorm.DB) ([]models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Property
	for _, p := range r.properties {
		if p.Status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) Search(db *gorm.DB, search string) ([]models.Property, error) {
	return r.FindAllActive(db)
}

func (r *fakePropertyRepo) FindByHost(db *gorm.DB, hostID string) ([]models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Property
	for _, p := range r.properties {
		if p.HostID == hostID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) FindRelated(db *gorm.DB, excludeID string, limit int) ([]models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Property
	for _, p := range r.properties {
		if p.ID != excludeID && p.Status && len(out) < limit {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) Save(db *gorm.DB, property *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *property
	r.properties[property.ID] = &cp
	return nil
}

func (r *fakePropertyRepo) Delete(db *gorm.DB, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.properties[id]; !ok {
		return repositories.ErrPropertyNotFound
	}
	delete(r.properties, id)
	return nil
}

func (r *fakePropertyRepo) CountByHost(db *gorm.DB, hostID string) (int64, error) {
	properties, _ := r.FindByHost(db, hostID)
	return int64(len(properties)), nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) add(u *models.User) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) Create(db *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(db *gorm.DB, email string) (bool, error) {
	_, err := r.FindByEmail(db, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeUserRepo) FindAll(db *gorm.DB) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(db *gorm.DB, id string, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	if name, ok := updates["name"].(string); ok {
		u.Name = name
	}
	if email, ok := updates["email"].(string); ok {
		u.Email = email
	}
	return nil
}

func (r *fakeUserRepo) Delete(db *gorm.DB, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Count(db *gorm.DB) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

// fakeMailer records confirmation sends on a channel so tests can wait for
// the background dispatch.
type fakeMailer struct {
	err  error
	sent chan email.BookingConfirmationData
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan email.BookingConfirmationData, 4)}
}

func (m *fakeMailer) Send(e *email.Email) error { return m.err }

func (m *fakeMailer) SendBookingConfirmation(data email.BookingConfirmationData) error {
	m.sent <- data
	return m.err
}

func (m *fakeMailer) Validate() error { return nil }
