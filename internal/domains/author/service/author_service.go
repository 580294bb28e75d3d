package service

import (
	"context"
	"errors"

	"blogging-backend/internal/domains/author"
	"blogging-backend/internal/shared/apperror"
	"blogging-backend/pkg/logger"
	"blogging-backend/pkg/password"
)

// authorService implements author.Service interface
type authorService struct {
	repo   author.Repository
	tokens author.TokenIssuer
	hasher password.Hasher
}

// NewAuthorService creates a new author service instance
func NewAuthorService(repo author.Repository, tokens author.TokenIssuer, hasher password.Hasher) author.Service {
	return &authorService{
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
	}
}

// ════════════════════════════════════════════════════════════════
// REGISTER
// ════════════════════════════════════════════════════════════════

func (s *authorService) Register(ctx context.Context, req author.RegisterRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	email := *req.Email

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Unexpected(err)
	}
	if exists {
		return nil, author.EmailTaken(email)
	}

	hash, err := s.hasher.Hash(*req.Password)
	if err != nil {
		return nil, apperror.Unexpected(err)
	}

	a := req.ToEntity()
	a.Password = hash

	if err := s.repo.Create(ctx, a); err != nil {
		// Lost the race against a concurrent registration
		if errors.Is(err, author.ErrDuplicateEmail) {
			return nil, author.EmailTaken(email)
		}
		return nil, apperror.Unexpected(err)
	}

	logger.Info("author registered", map[string]interface{}{"author_id": a.ID.Hex()})
	return a, nil
}

// ════════════════════════════════════════════════════════════════
// LOGIN
// ════════════════════════════════════════════════════════════════

func (s *authorService) Login(ctx context.Context, req author.LoginRequest) (*author.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.FindByEmail(ctx, *req.Email)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			return nil, author.ErrInvalidCredentials
		}
		return nil, apperror.Unexpected(err)
	}

	if err := s.hasher.Compare(a.Password, *req.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, author.ErrInvalidCredentials
		}
		return nil, apperror.Unexpected(err)
	}

	token, err := s.tokens.GenerateToken(a.ID.Hex())
	if err != nil {
		return nil, apperror.Unexpected(err)
	}

	return &author.LoginResponse{Token: token, Author: a}, nil
}
