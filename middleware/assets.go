package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// versionedAssets are the files under the static directory that get cache-busting hashes
var versionedAssets = []string{
	"css/site.css",
	"js/site.js",
	"images/favicon.svg",
}

var (
	assetVersions     = map[string]string{}
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string, log *zap.SugaredLogger) {
	assetVersionsOnce.Do(func() {
		versions := make(map[string]string, len(versionedAssets))
		for _, asset := range versionedAssets {
			version, err := computeFileHash(filepath.Join(staticDir, asset))
			if err != nil {
				log.Warnw("failed to hash asset", "asset", asset, "error", err)
				version = "1"
			}
			versions[asset] = version
		}
		assetVersions = versions
		log.Infow("startup", "status", "asset versions initialized", "assets", len(versions))
	})
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil))[:8], nil
}

// GetAssetVersion returns the version hash of a static asset, "1" if unknown.
// ctx is accepted for symmetry with the other template helpers.
func GetAssetVersion(ctx context.Context, asset string) string {
	if version, ok := assetVersions[asset]; ok {
		return version
	}
	return "1"
}

// AssetURL returns the cache-busted URL of a static asset
func AssetURL(ctx context.Context, asset string) string {
	return "/static/" + asset + "?v=" + GetAssetVersion(ctx, asset)
}
