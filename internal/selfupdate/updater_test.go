package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReleases serves GitHub release documents for the tags it holds. Each
// asset is listed in the release and downloadable from /dl/<tag>/<name>.
type fakeReleases struct {
	latest string
	assets map[string]map[string][]byte // tag -> name -> body
}

func (f *fakeReleases) serve(t *testing.T) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "/repos/topocapital/suitability/releases/"
		switch {
		case r.URL.Path == prefix+"latest":
			f.writeRelease(w, srv.URL, f.latest)
		case strings.HasPrefix(r.URL.Path, prefix+"tags/"):
			tag := strings.TrimPrefix(r.URL.Path, prefix+"tags/")
			if _, ok := f.assets[tag]; !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			f.writeRelease(w, srv.URL, tag)
		case strings.HasPrefix(r.URL.Path, "/dl/"):
			parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/dl/"), "/", 2)
			body, ok := f.assets[parts[0]][parts[1]]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write(body)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func (f *fakeReleases) writeRelease(w http.ResponseWriter, base, tag string) {
	rel := release{TagName: tag, HTMLURL: "https://example.com/" + tag}
	for name, body := range f.assets[tag] {
		rel.Assets = append(rel.Assets, asset{
			Name: name,
			URL:  fmt.Sprintf("%s/dl/%s/%s", base, tag, name),
			Size: int64(len(body)),
		})
	}
	_ = json.NewEncoder(w).Encode(rel)
}

// linuxRelease builds the archive and checksums of a linux/amd64 release
// whose binary holds content.
func linuxRelease(t *testing.T, tag string, content []byte) map[string][]byte {
	t.Helper()
	name, err := archiveName(tag, "linux", "amd64")
	require.NoError(t, err)
	archive := buildTarGz(t, "dist/suitability", content)
	sum := sha256.Sum256(archive)
	files := make(map[string][]byte)
	files[name] = archive
	files[checksumsName(tag)] = []byte(fmt.Sprintf("%s  %s\n", hex.EncodeToString(sum[:]), name))
	return files
}

func testChecker(srv *httptest.Server, exe string) *Checker {
	return NewChecker(
		WithBaseURL(srv.URL),
		withPlatform("linux", "amd64"),
		withExecPath(func() (string, error) { return exe, nil }),
	)
}

func installed(t *testing.T) string {
	t.Helper()
	exe := filepath.Join(t.TempDir(), "suitability")
	require.NoError(t, os.WriteFile(exe, []byte("v1"), 0o755))
	return exe
}

func TestArchiveName(t *testing.T) {
	tests := []struct {
		tag, goos, goarch string
		want              string
		wantErr           bool
	}{
		{"v1.4.0", "linux", "amd64", "suitability_1.4.0_linux_amd64.tar.gz", false},
		{"1.4.0", "darwin", "arm64", "suitability_1.4.0_darwin_arm64.tar.gz", false},
		{"v2.0.0", "windows", "amd64", "suitability_2.0.0_windows_amd64.zip", false},
		{"v1.0.0", "plan9", "amd64", "", true},
		{"v1.0.0", "linux", "386", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := archiveName(tt.tag, tt.goos, tt.goarch)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "suitability_1.4.0_checksums.txt", checksumsName("v1.4.0"))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{"newer release", "v1.0.0", "v1.2.0", true},
		{"same version", "v1.2.0", "v1.2.0", false},
		{"ahead of release", "v1.3.0", "v1.2.0", false},
		{"missing v prefix", "1.0.0", "v1.0.1", true},
		{"dev build", "(devel)", "v1.0.0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := (&fakeReleases{latest: tt.latest}).serve(t)
			res, err := testChecker(srv, "").Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.UpdateAvailable)
			assert.Equal(t, tt.latest, res.LatestVersion)
			assert.Equal(t, "https://example.com/"+tt.latest, res.ReleaseURL)
		})
	}
}

func TestCheck_BadTag(t *testing.T) {
	srv := (&fakeReleases{latest: "nightly"}).serve(t)
	_, err := testChecker(srv, "").Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	assert.ErrorContains(t, err, "not a semantic version")
}

func TestParseChecksums(t *testing.T) {
	got := parseChecksums([]byte("ABC  a.tar.gz\nnot-a-pair\n\n x y z \ndef  b.zip\n"))
	assert.Equal(t, map[string]string{"a.tar.gz": "abc", "b.zip": "def"}, got)
}

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	content := []byte("#!/bin/sh\necho suitability")

	tgz := filepath.Join(dir, "a.tar.gz")
	require.NoError(t, os.WriteFile(tgz, buildTarGz(t, "dist/suitability", content), 0o600))
	dest := filepath.Join(dir, "out")
	require.NoError(t, extract(tgz, "suitability", dest, 0o755))
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	zipped := filepath.Join(dir, "a.zip")
	require.NoError(t, os.WriteFile(zipped, buildZip(t, "suitability.exe", content), 0o600))
	require.NoError(t, extract(zipped, "suitability.exe", filepath.Join(dir, "out.exe"), 0o755))

	err = extract(tgz, "suitability.exe", filepath.Join(dir, "none"), 0o755)
	assert.ErrorContains(t, err, "not found")
}

func TestSwap_ReplacesAndKeepsNoBackup(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "suitability")
	staged := filepath.Join(dir, "new")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))
	require.NoError(t, os.WriteFile(staged, []byte("new"), 0o755))

	require.NoError(t, swap(staged, target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
	assert.NoFileExists(t, target+".old")
}

func TestSwap_RestoresOnFailure(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "suitability")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

	assert.Error(t, swap(filepath.Join(dir, "missing"), target))
	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), got)
}

func TestUpdate_InstallsLatest(t *testing.T) {
	content := []byte("suitability v2")
	srv := (&fakeReleases{
		latest: "v2.0.0",
		assets: map[string]map[string][]byte{"v2.0.0": linuxRelease(t, "v2.0.0", content)},
	}).serve(t)
	exe := installed(t)

	var stages []Stage
	err := testChecker(srv, exe).Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)
	assert.Equal(t, []Stage{StageResolve, StageDownload, StageVerify, StageInstall, StageDone}, stages)

	got, err := os.ReadFile(exe)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	info, err := os.Stat(exe)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(exe))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "work files must be cleaned up")
}

func TestUpdate_TargetVersion(t *testing.T) {
	srv := (&fakeReleases{
		latest: "v3.0.0",
		assets: map[string]map[string][]byte{"v2.1.0": linuxRelease(t, "v2.1.0", []byte("two"))},
	}).serve(t)
	exe := installed(t)

	require.NoError(t, testChecker(srv, exe).Update(context.Background(),
		&UpdateInput{CurrentVersion: "v3.0.0", TargetVersion: "2.1.0"}, nil))
	got, err := os.ReadFile(exe)
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)

	err = testChecker(srv, exe).Update(context.Background(),
		&UpdateInput{CurrentVersion: "v3.0.0", TargetVersion: "v9.9.9"}, nil)
	assert.ErrorContains(t, err, "not found")

	err = testChecker(srv, exe).Update(context.Background(),
		&UpdateInput{CurrentVersion: "v3.0.0", TargetVersion: "latest"}, nil)
	assert.ErrorContains(t, err, "not a semantic version")
}

func TestUpdate_Refusals(t *testing.T) {
	good := linuxRelease(t, "v2.0.0", []byte("v2"))
	archive, _ := archiveName("v2.0.0", "linux", "amd64")

	tampered := map[string][]byte{
		archive:                 good[archive],
		checksumsName("v2.0.0"): []byte(fmt.Sprintf("%064d  %s\n", 0, archive)),
	}
	unlisted := map[string][]byte{
		archive:                 good[archive],
		checksumsName("v2.0.0"): []byte("abc  other.tar.gz\n"),
	}
	noArchive := map[string][]byte{checksumsName("v2.0.0"): good[checksumsName("v2.0.0")]}

	tests := []struct {
		name    string
		current string
		assets  map[string][]byte
		wantIs  error
	}{
		{"development build", "(devel)", good, ErrDevBuild},
		{"already latest", "v2.0.0", good, ErrAlreadyLatest},
		{"checksum mismatch", "v1.0.0", tampered, ErrChecksum},
		{"archive not in checksums", "v1.0.0", unlisted, ErrChecksum},
		{"missing archive", "v1.0.0", noArchive, ErrMissingAsset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := (&fakeReleases{
				latest: "v2.0.0",
				assets: map[string]map[string][]byte{"v2.0.0": tt.assets},
			}).serve(t)
			exe := installed(t)

			err := testChecker(srv, exe).Update(context.Background(), &UpdateInput{CurrentVersion: tt.current}, nil)
			assert.ErrorIs(t, err, tt.wantIs)

			got, readErr := os.ReadFile(exe)
			require.NoError(t, readErr)
			assert.Equal(t, []byte("v1"), got, "binary must be untouched")
		})
	}
}

func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Size: int64(len(content)), Mode: 0o755, Typeflag: tar.TypeReg}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
