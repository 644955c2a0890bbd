package karyawan

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Karyawan, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Karyawan, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(k Karyawan) (Karyawan, error) {
	return s.repo.Create(k)
}

func (s *Service) Update(id int, k Karyawan) (Karyawan, error) {
	return s.repo.Update(id, k)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
