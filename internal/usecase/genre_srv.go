package usecase

import (
	"context"
	"fmt"
	"strings"

	"biograf/internal/data/entity"
	"biograf/internal/data/repository"
	"biograf/internal/dto/request"
	"biograf/internal/dto/response"
	"biograf/pkg/apperror"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

type GenreService interface {
	GetAllGenres(ctx context.Context) ([]response.GenreResponse, error)
	GetGenreByID(ctx context.Context, id int64) (*response.GenreResponse, error)
	GetGenreByName(ctx context.Context, name string) (*response.GenreResponse, error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	UpdateGenreByID(ctx context.Context, id int64, req *request.GenreRequest) error
	UpdateGenreByName(ctx context.Context, name string, req *request.GenreRequest) error
	DeleteGenreByID(ctx context.Context, id int64) error
	DeleteGenreByName(ctx context.Context, name string) error
}

type genreService struct {
	genreRepo repository.GenreRepository
	log       *zap.Logger
}

func NewGenreService(genreRepo repository.GenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		genreRepo: genreRepo,
		log:       log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) GetAllGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.genreRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}
	return response.GenresToResponse(genres), nil
}

func (s *genreService) GetGenreByID(ctx context.Context, id int64) (*response.GenreResponse, error) {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return nil, err
	}

	genre, err := s.genreRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get genre: %w", err)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) GetGenreByName(ctx context.Context, name string) (*response.GenreResponse, error) {
	genre, err := s.findByName(ctx, name)
	if err != nil {
		return nil, err
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	genre := &entity.Genre{Name: strings.TrimSpace(req.Name)}
	if err := s.genreRepo.Create(ctx, genre); err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created", zap.Int64("genre_id", genre.ID), zap.String("name", genre.Name))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) UpdateGenreByID(ctx context.Context, id int64, req *request.GenreRequest) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}

	genre, err := s.genreRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find genre: %w", err)
	}

	return s.rename(ctx, genre, req)
}

func (s *genreService) UpdateGenreByName(ctx context.Context, name string, req *request.GenreRequest) error {
	genre, err := s.findByName(ctx, name)
	if err != nil {
		return err
	}

	return s.rename(ctx, genre, req)
}

func (s *genreService) DeleteGenreByID(ctx context.Context, id int64) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}

	if err := s.genreRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}

	s.log.Info("Genre deleted", zap.Int64("genre_id", id))
	return nil
}

func (s *genreService) DeleteGenreByName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperror.InvalidInput("name is required")
	}

	if err := s.genreRepo.DeleteByName(ctx, name); err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}

	s.log.Info("Genre deleted", zap.String("name", name))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *genreService) findByName(ctx context.Context, name string) (*entity.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.InvalidInput("name is required")
	}

	genre, err := s.genreRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find genre: %w", err)
	}
	return genre, nil
}

func (s *genreService) rename(ctx context.Context, genre *entity.Genre, req *request.GenreRequest) error {
	if err := utils.Validate(req); err != nil {
		return err
	}

	genre.Name = strings.TrimSpace(req.Name)
	if err := s.genreRepo.Update(ctx, genre); err != nil {
		return fmt.Errorf("update genre: %w", err)
	}

	s.log.Info("Genre updated", zap.Int64("genre_id", genre.ID), zap.String("name", genre.Name))
	return nil
}
