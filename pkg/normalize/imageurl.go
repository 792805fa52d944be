// pkg/normalize/imageurl.go
package normalize

import "strings"

// DriveImageURL rewrites Google Drive share links into direct image URLs.
// Non-Drive URLs and links already in direct form pass through unchanged.
func DriveImageURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" || !strings.Contains(url, "drive.google.com") {
		return url
	}
	if strings.Contains(url, "drive.google.com/uc?export=view&id=") {
		return url
	}

	var fileID string
	switch {
	case strings.Contains(url, "/file/d/"):
		// https://drive.google.com/file/d/FILE_ID/view
		rest := url[strings.Index(url, "/file/d/")+len("/file/d/"):]
		fileID = cutAny(rest, "/", "?")
	case strings.Contains(url, "open?id="):
		// https://drive.google.com/open?id=FILE_ID
		rest := url[strings.Index(url, "open?id=")+len("open?id="):]
		fileID = cutAny(rest, "&", "#")
	case strings.Contains(url, "uc?id="):
		// https://drive.google.com/uc?id=FILE_ID
		rest := url[strings.Index(url, "uc?id=")+len("uc?id="):]
		fileID = cutAny(rest, "&", "#")
	}

	if fileID == "" {
		return url
	}
	return "https://drive.google.com/uc?export=view&id=" + fileID
}

// cutAny returns s truncated at the first occurrence of any separator.
func cutAny(s string, seps ...string) string {
	for _, sep := range seps {
		if i := strings.Index(s, sep); i >= 0 {
			s = s[:i]
		}
	}
	return s
}
