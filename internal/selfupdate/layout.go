package selfupdate

import (
	"fmt"
	"strings"
)

const binaryName = "suitability"

// Release archives are named suitability_<version>_<os>_<arch> with the
// version lacking its "v" prefix. Windows builds ship as .zip, the others
// as .tar.gz, next to one checksums file per release.
var supportedArch = map[string]bool{"amd64": true, "arm64": true}

func archiveName(tag, goos, goarch string) (string, error) {
	if !supportedArch[goarch] {
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}
	ext := ".tar.gz"
	switch goos {
	case "linux", "darwin":
	case "windows":
		ext = ".zip"
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
	return fmt.Sprintf("%s_%s_%s_%s%s", binaryName, bareVersion(tag), goos, goarch, ext), nil
}

func checksumsName(tag string) string {
	return fmt.Sprintf("%s_%s_checksums.txt", binaryName, bareVersion(tag))
}

// executableName is the file inside the archive.
func executableName(goos string) string {
	if goos == "windows" {
		return binaryName + ".exe"
	}
	return binaryName
}

func bareVersion(tag string) string {
	return strings.TrimPrefix(canonical(tag), "v")
}

// parseChecksums reads "<sha256>  <file>" lines.
func parseChecksums(data []byte) map[string]string {
	sums := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 {
			sums[fields[1]] = strings.ToLower(fields[0])
		}
	}
	return sums
}
