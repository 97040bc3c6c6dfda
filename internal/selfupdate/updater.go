package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the requested version")
	ErrChecksum      = errors.New("checksum verification failed")
	ErrMissingAsset  = errors.New("release has no asset for this platform")
)

// Stage names a step of Update.
type Stage string

const (
	StageResolve  Stage = "resolve"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageInstall  Stage = "install"
	StageDone     Stage = "done"
)

// UpdateInput selects the release to install. An empty TargetVersion means
// the latest release, which is only installed when it is newer.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// UpdateProgress is reported at the start of each stage.
type UpdateProgress struct {
	Stage   Stage
	Message string
}

// maxChecksumsSize bounds the checksums download.
const maxChecksumsSize = 1 << 20

// Update installs a release over the running executable. The archive is
// hashed while it streams to disk and the swap keeps the old binary until
// the new one is in place.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	report := func(s Stage, format string, args ...any) {
		if progress != nil {
			progress(UpdateProgress{Stage: s, Message: fmt.Sprintf(format, args...)})
		}
	}

	if !semver.IsValid(canonical(input.CurrentVersion)) {
		return ErrDevBuild
	}

	report(StageResolve, "Consultando releases de %s/%s...", c.owner, c.repo)
	rel, err := c.resolve(ctx, input)
	if err != nil {
		return err
	}

	archive, err := archiveName(rel.TagName, c.goos, c.goarch)
	if err != nil {
		return err
	}
	archiveAsset, ok := rel.asset(archive)
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingAsset, archive)
	}
	sumsAsset, ok := rel.asset(checksumsName(rel.TagName))
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingAsset, checksumsName(rel.TagName))
	}

	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat executable: %w", err)
	}

	// Work next to the executable so the final rename stays on one filesystem.
	work, err := os.MkdirTemp(filepath.Dir(target), "."+binaryName+"-update-*")
	if err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(work) }()

	report(StageDownload, "Baixando %s (%s)...", rel.TagName, archive)
	archivePath := filepath.Join(work, archive)
	sum, err := c.fetchTo(ctx, archiveAsset.URL, archivePath)
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	report(StageVerify, "Verificando checksum...")
	sums, err := c.fetchChecksums(ctx, sumsAsset.URL)
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, ok := sums[archive]
	if !ok {
		return fmt.Errorf("%w: %s is not listed in %s", ErrChecksum, archive, sumsAsset.Name)
	}
	if sum != want {
		return fmt.Errorf("%w: %s has %s, want %s", ErrChecksum, archive, sum, want)
	}

	report(StageInstall, "Instalando em %s...", target)
	staged := filepath.Join(work, executableName(c.goos))
	if err := extract(archivePath, executableName(c.goos), staged, info.Mode().Perm()); err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}
	if err := swap(staged, target); err != nil {
		return fmt.Errorf("install: %w", err)
	}

	report(StageDone, "Atualizado para %s", rel.TagName)
	return nil
}

// resolve picks the release to install and rejects no-op updates.
func (c *Checker) resolve(ctx context.Context, input *UpdateInput) (*release, error) {
	if input.TargetVersion == "" {
		rel, err := c.fetchRelease(ctx, "")
		if err != nil {
			return nil, err
		}
		if !newer(rel.TagName, input.CurrentVersion) {
			return nil, ErrAlreadyLatest
		}
		return rel, nil
	}

	tag := canonical(input.TargetVersion)
	if !semver.IsValid(tag) {
		return nil, fmt.Errorf("target version %q is not a semantic version", input.TargetVersion)
	}
	if semver.Compare(tag, canonical(input.CurrentVersion)) == 0 {
		return nil, ErrAlreadyLatest
	}
	return c.fetchRelease(ctx, tag)
}

func (c *Checker) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/octet-stream")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return resp.Body, nil
}

// fetchTo streams url into path and returns the hex SHA-256 of the body.
func (c *Checker) fetchTo(ctx context.Context, url, path string) (string, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer func() { _ = body.Close() }()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(f, h), body); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (c *Checker) fetchChecksums(ctx context.Context, url string) (map[string]string, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()
	data, err := io.ReadAll(io.LimitReader(body, maxChecksumsSize))
	if err != nil {
		return nil, err
	}
	return parseChecksums(data), nil
}

// extract copies the regular file called name out of the archive at
// archivePath into dest with the given permissions.
func extract(archivePath, name, dest string, perm os.FileMode) error {
	var (
		src     io.Reader
		cleanup func()
		err     error
	)
	if strings.HasSuffix(archivePath, ".zip") {
		src, cleanup, err = openInZip(archivePath, name)
	} else {
		src, cleanup, err = openInTarGz(archivePath, name)
	}
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func openInTarGz(path, name string) (io.Reader, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("open gzip: %w", err)
	}
	cleanup := func() { _ = gz.Close(); _ = f.Close() }

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return tr, cleanup, nil
		}
	}
	cleanup()
	return nil, nil, fmt.Errorf("%s not found in archive", name)
}

func openInZip(path, name string) (io.Reader, func(), error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if f.Mode().IsRegular() && filepath.Base(f.Name) == name {
			rc, err := f.Open()
			if err != nil {
				_ = zr.Close()
				return nil, nil, err
			}
			return rc, func() { _ = rc.Close(); _ = zr.Close() }, nil
		}
	}
	_ = zr.Close()
	return nil, nil, fmt.Errorf("%s not found in archive", name)
}

// swap moves staged over target. The old binary is renamed aside first,
// which also works for a running executable on Windows, and is put back
// if the second rename fails.
func swap(staged, target string) error {
	backup := target + ".old"
	_ = os.Remove(backup)
	if err := os.Rename(target, backup); err != nil {
		return err
	}
	if err := os.Rename(staged, target); err != nil {
		if restoreErr := os.Rename(backup, target); restoreErr != nil {
			return fmt.Errorf("%w (restore failed: %v)", err, restoreErr)
		}
		return err
	}
	// A running Windows executable cannot be removed; it is cleared on the
	// next update instead.
	_ = os.Remove(backup)
	return nil
}
