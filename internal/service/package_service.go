package service

import (
	"context"

	"github.com/ShirinKhan1/system-design/internal/models"
)

// PackageStore is the persistence gateway for packages.
// Implemented by *repository.PackageRepository.
type PackageStore interface {
	Insert(ctx context.Context, pkg *models.Package) error
	List(ctx context.Context) ([]models.Package, error)
}

type PackageService struct {
	packages PackageStore
}

func NewPackageService(packages PackageStore) *PackageService {
	return &PackageService{packages: packages}
}

func (s *PackageService) CreatePackage(ctx context.Context, cmd CreatePackageCommand) (*models.Package, error) {
	pkg := &models.Package{
		UserID: cmd.UserID,
		Height: cmd.Height,
		Width:  cmd.Width,
		Length: cmd.Length,
		Weight: cmd.Weight,
	}
	if err := s.packages.Insert(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *PackageService) ListPackages(ctx context.Context) ([]models.Package, error) {
	return s.packages.List(ctx)
}
