package karyawan

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("karyawan not found")

type Repository interface {
	List() ([]Karyawan, error)
	GetByID(id int) (Karyawan, error)
	Create(k Karyawan) (Karyawan, error)
	Update(id int, k Karyawan) (Karyawan, error)
	Delete(id int) error
}

type InMemoryRepository struct {
	mu        sync.RWMutex
	karyawans []Karyawan
	nextID    int
}

func NewInMemoryRepository(seed []Karyawan) *InMemoryRepository {
	repo := &InMemoryRepository{
		karyawans: make([]Karyawan, 0, len(seed)),
		nextID:    1,
	}

	maxID := 0
	for _, k := range seed {
		repo.karyawans = append(repo.karyawans, k)
		if k.ID > maxID {
			maxID = k.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

// List returns karyawans in insertion order, matching the Postgres
// repository's ascending id order.
func (r *InMemoryRepository) List() ([]Karyawan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	karyawans := make([]Karyawan, len(r.karyawans))
	copy(karyawans, r.karyawans)
	return karyawans, nil
}

func (r *InMemoryRepository) GetByID(id int) (Karyawan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, k := range r.karyawans {
		if k.ID == id {
			return k, nil
		}
	}

	return Karyawan{}, ErrNotFound
}

func (r *InMemoryRepository) Create(k Karyawan) (Karyawan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if k.ID == 0 {
		k.ID = r.nextID
		r.nextID++
	}

	r.karyawans = append(r.karyawans, k)
	return k, nil
}

func (r *InMemoryRepository) Update(id int, update Karyawan) (Karyawan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, k := range r.karyawans {
		if k.ID == id {
			k.Name = update.Name
			k.Jabatan = update.Jabatan
			k.Umur = update.Umur
			k.Gaji = update.Gaji
			r.karyawans[i] = k
			return k, nil
		}
	}

	return Karyawan{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, k := range r.karyawans {
		if k.ID == id {
			r.karyawans = append(r.karyawans[:i], r.karyawans[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}
