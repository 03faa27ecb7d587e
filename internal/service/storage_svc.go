package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ==================== 接口定义 ====================

// StorageProvider 存储提供者接口
type StorageProvider interface {
	// Upload 上传文件，返回公开访问 URL
	Upload(ctx context.Context, data []byte, filename string, contentType string) (url string, err error)

	// Delete 删除文件
	Delete(ctx context.Context, url string) error
}

// ==================== 配置 ====================

type StorageConfig struct {
	Provider  string // "s3" | "local"
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	CDNDomain string // CDN 域名 (可选)
	BasePath  string // 基础路径前缀

	// local provider
	LocalDir      string
	PublicBaseURL string
}

// ==================== 工厂方法 ====================

func NewStorageProvider(cfg *StorageConfig) (StorageProvider, error) {
	switch cfg.Provider {
	case "s3":
		return NewS3Storage(cfg)
	case "local":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("不支持的存储提供者: %s", cfg.Provider)
	}
}

// ==================== StorageService Logo 上传服务 ====================

// StorageService Logo 上传服务（包装 StorageProvider）
type StorageService struct {
	provider StorageProvider
	config   *StorageConfig
}

// NewStorageService 创建存储服务
func NewStorageService(cfg *StorageConfig) (*StorageService, error) {
	provider, err := NewStorageProvider(cfg)
	if err != nil {
		return nil, err
	}
	return &StorageService{provider: provider, config: cfg}, nil
}

// SaveBase64 保存 base64 图片，返回公开访问 URL
// 支持 data URI ("data:image/png;base64,...") 与裸 base64（默认按 png 处理）
func (s *StorageService) SaveBase64(ctx context.Context, base64Data, prefix string) (string, error) {
	contentType := "image/png"
	payload := base64Data

	if strings.HasPrefix(base64Data, "data:") {
		idx := strings.Index(base64Data, ";base64,")
		if idx < 0 {
			return "", fmt.Errorf("%w: 非法的 data URI", ErrInvalidImageData)
		}
		contentType = base64Data[len("data:"):idx]
		payload = base64Data[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: base64 解码失败", ErrInvalidImageData)
	}

	filename := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), extForContentType(contentType))
	return s.provider.Upload(ctx, data, filename, contentType)
}

// Delete 删除文件
func (s *StorageService) Delete(ctx context.Context, url string) error {
	return s.provider.Delete(ctx, url)
}

// extForContentType 按 MIME 推断扩展名
func extForContentType(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ".png"
	}
}

// ==================== S3 实现 ====================

type S3Storage struct {
	client    *s3.Client
	bucket    string
	region    string
	cdnDomain string
	basePath  string
}

// NewS3Storage 创建 S3 存储
func NewS3Storage(cfg *StorageConfig) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("加载 AWS 配置失败: %v", err)
	}

	return &S3Storage{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		cdnDomain: cfg.CDNDomain,
		basePath:  cfg.BasePath,
	}, nil
}

// Upload 上传到 S3
func (s *S3Storage) Upload(ctx context.Context, data []byte, filename string, contentType string) (string, error) {
	key := s.objectKey(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("S3 上传失败: %v", err)
	}

	if s.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", s.cdnDomain, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// Delete 从 S3 删除
func (s *S3Storage) Delete(ctx context.Context, url string) error {
	key := s.keyFromURL(url)
	if key == "" {
		return fmt.Errorf("无法从 URL 解析对象 Key: %s", url)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Storage) objectKey(filename string) string {
	if s.basePath == "" {
		return filename
	}
	return strings.TrimSuffix(s.basePath, "/") + "/" + filename
}

func (s *S3Storage) keyFromURL(url string) string {
	for _, host := range []string{
		fmt.Sprintf("https://%s/", s.cdnDomain),
		fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region),
	} {
		if s.cdnDomain == "" && strings.HasPrefix(host, "https:///") {
			continue
		}
		if strings.HasPrefix(url, host) {
			return strings.TrimPrefix(url, host)
		}
	}
	return ""
}

// ==================== 本地磁盘实现 ====================

// LocalStorage 本地磁盘存储（开发环境）
// 文件落在 LocalDir 下，由路由层挂 static 提供访问
type LocalStorage struct {
	dir           string
	publicBaseURL string
}

// NewLocalStorage 创建本地存储
func NewLocalStorage(cfg *StorageConfig) (*LocalStorage, error) {
	if cfg.LocalDir == "" {
		return nil, fmt.Errorf("本地存储目录未配置")
	}
	if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
		return nil, fmt.Errorf("创建本地存储目录失败: %v", err)
	}
	return &LocalStorage{
		dir:           cfg.LocalDir,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload 写本地文件
func (l *LocalStorage) Upload(_ context.Context, data []byte, filename string, _ string) (string, error) {
	path := filepath.Join(l.dir, filepath.FromSlash(filename))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/uploads/%s", l.publicBaseURL, filename), nil
}

// Delete 删本地文件
func (l *LocalStorage) Delete(_ context.Context, url string) error {
	idx := strings.Index(url, "/uploads/")
	if idx < 0 {
		return fmt.Errorf("无法从 URL 解析文件路径: %s", url)
	}
	rel := url[idx+len("/uploads/"):]
	return os.Remove(filepath.Join(l.dir, filepath.FromSlash(rel)))
}
