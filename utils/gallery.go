package utils

// MergeGallery builds the rendered image list for a record: the primary
// image_url first (when present), then the gallery images, deduplicated by
// URL so a primary that also appears in the gallery shows once.
func MergeGallery(imageURL *string, images []string) []string {
	out := make([]string, 0, len(images)+1)
	seen := make(map[string]bool, len(images)+1)

	if imageURL != nil && *imageURL != "" {
		out = append(out, *imageURL)
		seen[*imageURL] = true
	}
	for _, url := range images {
		if url == "" || seen[url] {
			continue
		}
		out = append(out, url)
		seen[url] = true
	}
	return out
}
