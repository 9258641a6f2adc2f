package services

import "quillblog/internal/utils"

// CredentialService is the only place raw passwords are handled.
type CredentialService struct {
	iterations int
}

func NewCredentialService(iterations int) *CredentialService {
	if iterations <= 0 {
		iterations = utils.DefaultHashIters
	}
	return &CredentialService{iterations: iterations}
}

func (s *CredentialService) Hash(password string) (string, error) {
	return utils.HashPassword(password, s.iterations)
}

func (s *CredentialService) Verify(password, stored string) bool {
	return utils.CheckPasswordHash(password, stored)
}
