package locales

// Header is the first line of every report.
const Header = "Missing Locales"

// Missing returns the locales of repo that are absent from pontoon, keeping
// the order in which they appear in repo. The result is never nil.
func Missing(repo, pontoon []string) []string {
	known := make(map[string]struct{}, len(pontoon))
	for _, code := range pontoon {
		known[code] = struct{}{}
	}

	missing := make([]string, 0, len(repo))
	for _, code := range repo {
		if _, ok := known[code]; !ok {
			missing = append(missing, code)
		}
	}
	return missing
}

// Result prepends Header to Missing(repo, pontoon).
func Result(repo, pontoon []string) []string {
	return append([]string{Header}, Missing(repo, pontoon)...)
}
