package service

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/disintegration/imaging"
	"github.com/webblaze/projectflow-be/config"
	"github.com/webblaze/projectflow-be/logger"
	"github.com/webblaze/projectflow-be/types"
	"golang.org/x/sync/errgroup"
)

// ImageService stores subtask attachments. Uploads are resized to the
// configured maximum width and re-encoded as JPEG before leaving the
// process. StoreAll is all-or-nothing: one failed upload rolls back the
// ones that already succeeded.
type ImageService interface {
	StoreAll(ctx context.Context, images [][]byte) ([]string, error)
	DeleteMany(ctx context.Context, urls []string) types.ImageDeleteResult
}

type imageService struct {
	client       *cloudinary.Cloudinary
	uploadFolder string
	maxWidth     int
	jpegQuality  int
}

func NewImageService(cfg *config.Config) (ImageService, error) {
	client, err := cloudinary.NewFromURL(cfg.Cloudinary.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to init image store: %w", err)
	}
	return &imageService{
		client:       client,
		uploadFolder: cfg.Cloudinary.UploadFolder,
		maxWidth:     cfg.Cloudinary.MaxWidth,
		jpegQuality:  cfg.Cloudinary.JPEGQuality,
	}, nil
}

func (s *imageService) normalize(raw []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable image", types.ErrValidation)
	}
	if img.Bounds().Dx() > s.maxWidth {
		img = imaging.Resize(img, s.maxWidth, 0, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(s.jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *imageService) StoreAll(ctx context.Context, images [][]byte) ([]string, error) {
	if len(images) == 0 {
		return nil, nil
	}
	if len(images) > types.MAX_SUBTASK_IMAGES {
		return nil, types.Validationf("at most %d images allowed", types.MAX_SUBTASK_IMAGES)
	}

	urls := make([]string, len(images))
	g, gctx := errgroup.WithContext(ctx)
	for i, raw := range images {
		i, raw := i, raw
		g.Go(func() error {
			normalized, err := s.normalize(raw)
			if err != nil {
				return err
			}
			resp, err := s.client.Upload.Upload(gctx, bytes.NewReader(normalized), uploader.UploadParams{
				Folder: s.uploadFolder,
			})
			if err != nil {
				return fmt.Errorf("failed to upload image: %w", err)
			}
			urls[i] = resp.SecureURL
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var uploaded []string
		for _, u := range urls {
			if u != "" {
				uploaded = append(uploaded, u)
			}
		}
		if len(uploaded) > 0 {
			s.DeleteMany(context.WithoutCancel(ctx), uploaded)
		}
		return nil, err
	}
	return urls, nil
}

func (s *imageService) DeleteMany(ctx context.Context, urls []string) types.ImageDeleteResult {
	var result types.ImageDeleteResult
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, url := range urls {
		publicID := publicIDFromURL(url)
		if publicID == "" {
			mu.Lock()
			result.FailedCount++
			mu.Unlock()
			continue
		}
		wg.Add(1)
		go func(url, publicID string) {
			defer wg.Done()
			_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Log.WithError(err).WithField("url", url).Warn("failed to delete image")
				result.FailedCount++
				return
			}
			result.DeletedCount++
		}(url, publicID)
	}
	wg.Wait()
	return result
}

// publicIDFromURL recovers the asset's public id from a delivery URL like
// https://res.cloudinary.com/demo/image/upload/v123/subtasks/abc.jpg,
// which is "subtasks/abc".
func publicIDFromURL(url string) string {
	idx := strings.Index(url, "/upload/")
	if idx < 0 {
		return ""
	}
	rest := url[idx+len("/upload/"):]
	if slash := strings.Index(rest, "/"); slash >= 0 && strings.HasPrefix(rest, "v") {
		rest = rest[slash+1:]
	}
	ext := path.Ext(rest)
	return strings.TrimSuffix(rest, ext)
}
