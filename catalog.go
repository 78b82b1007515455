// Copyright 2025 Skillsift Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package skillsift

import (
	"log/slog"

	"github.com/skillsift/skillsift/ai"
	"github.com/skillsift/skillsift/ai/openai"
	"github.com/skillsift/skillsift/ingestion"
	"github.com/skillsift/skillsift/search"
	"github.com/skillsift/skillsift/storage"
	"github.com/skillsift/skillsift/storage/badger"
)

// Catalog owns the long-lived resources of one assessment catalog: the
// storage backend, its repository and the AI provider. Searchers and
// ingestion pipelines are created per use from these shared handles; the
// repository handle is safe for concurrent in-flight pipelines.
type Catalog struct {
	backend  *badger.Backend
	repo     storage.AssessmentRepository
	provider ai.AIProvider
	logger   *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	aiConfig *ai.Config
	inMemory bool
}

// WithAIConfig sets the AI provider configuration.
func WithAIConfig(cfg *ai.Config) CatalogOption {
	return func(o *catalogOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithInMemoryStorage keeps the whole catalog in memory. For tests and
// throwaway experiments only.
func WithInMemoryStorage() CatalogOption {
	return func(o *catalogOptions) {
		o.inMemory = true
	}
}

// NewCatalog opens a catalog at filePath.
func NewCatalog(filePath string, opts ...CatalogOption) (*Catalog, error) {
	options := &catalogOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	repo, err := badger.NewAssessmentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	return &Catalog{
		backend:  backend,
		repo:     repo,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

// Close releases the provider, the repository and the backend, in that order.
func (c *Catalog) Close() error {
	if err := c.provider.Close(); err != nil {
		c.logger.Error("error closing AI provider", "err", err)
	}

	if err := c.repo.Close(); err != nil {
		c.logger.Error("error closing assessment repository", "err", err)
		return err
	}

	if err := c.backend.Close(); err != nil {
		c.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Repository exposes the assessment repository.
func (c *Catalog) Repository() storage.AssessmentRepository {
	return c.repo
}

// NewSearcher creates a searcher over this catalog.
func (c *Catalog) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(c.repo, c.provider, opts...)
}

// NewIngestionPipeline creates an ingestion pipeline into this catalog.
func (c *Catalog) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(c.repo, c.provider, opts...)
}
