// Package storage implementa el almacenamiento de fotos de departamentos
// sobre MinIO (o cualquier object storage compatible con S3).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
	"github.com/vinces1leon/inmobiliaria-mye/internal/application/quotes"
	"github.com/vinces1leon/inmobiliaria-mye/internal/application/units"
	"github.com/vinces1leon/inmobiliaria-mye/pkg/config"
)

var (
	_ units.PhotoStorage  = (*MinIOStore)(nil)
	_ quotes.PhotoFetcher = (*MinIOStore)(nil)
)

// MinIOStore guarda y recupera fotos en un bucket MinIO.
type MinIOStore struct {
	client       *minio.Client
	bucket       string
	fetchTimeout time.Duration
}

// NewMinIOStore conecta con MinIO y asegura que el bucket exista.
func NewMinIOStore(cfg config.StorageConfig) (*MinIOStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("crear cliente minio: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("verificar bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("crear bucket: %w", err)
		}
		log.Info().Str("bucket", cfg.Bucket).Msg("bucket de fotos creado")
	}

	return &MinIOStore{
		client:       client,
		bucket:       cfg.Bucket,
		fetchTimeout: time.Duration(cfg.FetchTimeout) * time.Second,
	}, nil
}

// Upload sube la foto bajo la key indicada.
func (s *MinIOStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("subir objeto %s: %w", key, err)
	}
	log.Debug().Str("key", key).Int("bytes", len(data)).Msg("foto subida al bucket")
	return nil
}

// Fetch descarga la foto con el timeout acotado de configuración. Se usa al
// generar el PDF: un bucket lento no puede colgar la descarga del documento.
func (s *MinIOStore) Fetch(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("obtener objeto %s: %w", key, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("leer objeto %s: %w", key, err)
	}
	return data, nil
}

// Delete elimina la foto del bucket.
func (s *MinIOStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("eliminar objeto %s: %w", key, err)
	}
	return nil
}
