package api_test

import (
	"context"
	"strings"
	"sync"

	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/repository"
)

// memStore backs every repository interface with in-process maps so the full
// router can be exercised without a database.
type memStore struct {
	mu         sync.Mutex
	users      map[int64]*model.User
	patients   map[int64]*model.Patient
	doctors    map[int64]*model.Doctor
	pharmacies map[int64]*model.Pharmacy
	medicines  map[int64]*model.Medicine
	posts      map[int64]*model.Post
	plans      []*model.InsurancePlan
	nextID     int64
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[int64]*model.User{},
		patients:   map[int64]*model.Patient{},
		doctors:    map[int64]*model.Doctor{},
		pharmacies: map[int64]*model.Pharmacy{},
		medicines:  map[int64]*model.Medicine{},
		posts:      map[int64]*model.Post{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) Register(_ context.Context, user *model.User, profile interface{}) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
		if user.Phone != "" && u.Phone == user.Phone {
			return repository.ErrDuplicatePhone
		}
	}

	user.ID = r.s.id()
	user.IsActive = true
	stored := *user
	r.s.users[user.ID] = &stored

	switch p := profile.(type) {
	case *model.Patient:
		p.ID = r.s.id()
		p.UserID = user.ID
		cp := *p
		r.s.patients[p.ID] = &cp
	case *model.Doctor:
		p.ID = r.s.id()
		p.UserID = user.ID
		cp := *p
		r.s.doctors[p.ID] = &cp
	case *model.Pharmacy:
		p.ID = r.s.id()
		p.UserID = user.ID
		cp := *p
		r.s.pharmacies[p.ID] = &cp
	}
	return nil
}

func (r memUserRepo) Get(_ context.Context, id int64) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r memUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r memUserRepo) ProfileID(_ context.Context, userID int64, userType string) (*int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	switch userType {
	case model.UserTypePatient:
		for _, p := range r.s.patients {
			if p.UserID == userID {
				id := p.ID
				return &id, nil
			}
		}
	case model.UserTypeDoctor:
		for _, d := range r.s.doctors {
			if d.UserID == userID {
				id := d.ID
				return &id, nil
			}
		}
	case model.UserTypePharmacy:
		for _, p := range r.s.pharmacies {
			if p.UserID == userID {
				id := p.ID
				return &id, nil
			}
		}
	}
	return nil, nil
}

type memPatientRepo struct{ s *memStore }

func (r memPatientRepo) Get(_ context.Context, id int64) (*model.Patient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.patients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r memPatientRepo) GetByUserID(_ context.Context, userID int64) (*model.Patient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.patients {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memPatientRepo) Update(_ context.Context, patient *model.Patient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.patients[patient.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *patient
	r.s.patients[patient.ID] = &cp
	return nil
}

type memDoctorRepo struct{ s *memStore }

func (r memDoctorRepo) Get(_ context.Context, id int64) (*model.Doctor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.doctors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r memDoctorRepo) GetByUserID(_ context.Context, userID int64) (*model.Doctor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, d := range r.s.doctors {
		if d.UserID == userID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memDoctorRepo) Update(_ context.Context, doctor *model.Doctor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.doctors[doctor.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *doctor
	r.s.doctors[doctor.ID] = &cp
	return nil
}

func (r memDoctorRepo) SetAvailability(_ context.Context, id int64, available bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.doctors[id]
	if !ok {
		return repository.ErrNotFound
	}
	d.IsAvailable = available
	return nil
}

func (r memDoctorRepo) ListAvailable(_ context.Context, filters *model.DoctorSearchFilters) ([]*model.Doctor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*model.Doctor{}
	for _, d := range r.s.doctors {
		if !d.IsAvailable {
			continue
		}
		if filters != nil {
			if filters.Location != "" && (d.Location == nil || !containsFold(*d.Location, filters.Location)) {
				continue
			}
			if filters.Specialization != "" && !containsFold(d.Specialization, filters.Specialization) {
				continue
			}
		}
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

type memPharmacyRepo struct{ s *memStore }

func (r memPharmacyRepo) Get(_ context.Context, id int64) (*model.Pharmacy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pharmacies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r memPharmacyRepo) GetByUserID(_ context.Context, userID int64) (*model.Pharmacy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.pharmacies {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memMedicineRepo struct{ s *memStore }

func (r memMedicineRepo) Create(_ context.Context, medicine *model.Medicine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	medicine.ID = r.s.id()
	cp := *medicine
	r.s.medicines[medicine.ID] = &cp
	return nil
}

func (r memMedicineRepo) Get(_ context.Context, id int64) (*model.Medicine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.medicines[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r memMedicineRepo) List(_ context.Context, filters *model.MedicineFilters) ([]*model.Medicine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*model.Medicine{}
	for _, m := range r.s.medicines {
		if filters != nil {
			if filters.Search != "" && !containsFold(m.Name, filters.Search) {
				continue
			}
			if filters.Category != "" && (m.Category == nil || !strings.EqualFold(*m.Category, filters.Category)) {
				continue
			}
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

type memPrescriptionRepo struct{ s *memStore }

func (r memPrescriptionRepo) Create(_ context.Context, prescription *model.Prescription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prescription.ID = r.s.id()
	return nil
}

type memPostRepo struct{ s *memStore }

func (r memPostRepo) Create(_ context.Context, post *model.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	post.ID = r.s.id()
	cp := *post
	r.s.posts[post.ID] = &cp
	return nil
}

func (r memPostRepo) Get(_ context.Context, id int64) (*model.PostWithAuthor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.withAuthor(p), nil
}

func (r memPostRepo) List(_ context.Context, filters *model.PostFilters) ([]*model.PostWithAuthor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*model.PostWithAuthor{}
	for _, p := range r.s.posts {
		if filters != nil && filters.PostType != "" && p.PostType != filters.PostType {
			continue
		}
		out = append(out, r.withAuthor(p))
	}
	return out, nil
}

func (r memPostRepo) IncrementLikes(_ context.Context, id int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	p.Likes++
	return p.Likes, nil
}

func (r memPostRepo) withAuthor(p *model.Post) *model.PostWithAuthor {
	author := model.PostAuthor{UserType: "unknown", Name: "Unknown"}
	if u, ok := r.s.users[p.UserID]; ok {
		author.UserType = u.UserType
		switch u.UserType {
		case model.UserTypePatient:
			for _, pr := range r.s.patients {
				if pr.UserID == u.ID {
					author.Name = pr.Name
				}
			}
		case model.UserTypeDoctor:
			for _, d := range r.s.doctors {
				if d.UserID == u.ID {
					author.Name = d.Name
				}
			}
		case model.UserTypePharmacy:
			for _, ph := range r.s.pharmacies {
				if ph.UserID == u.ID {
					author.Name = ph.Name
				}
			}
		}
	}
	cp := *p
	return &model.PostWithAuthor{Post: cp, Author: author}
}

type memInsuranceRepo struct{ s *memStore }

func (r memInsuranceRepo) List(_ context.Context) ([]*model.InsurancePlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]*model.InsurancePlan{}, r.s.plans...), nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
