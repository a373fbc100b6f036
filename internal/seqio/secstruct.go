package seqio

import "os"

// ReadSecStruct parses a secondary structure sidecar file. The file is
// FASTA shaped, every record holding DSSP summary codes for the
// identically named sequence, one letter per residue.
func ReadSecStruct(path, contents string) (map[string]string, error) {
	recs, err := ReadFasta(path, contents)
	if err != nil {
		return nil, err
	}

	ss := make(map[string]string, len(recs))
	for _, rec := range recs {
		ss[rec.ID] = rec.Seq
	}
	return ss, nil
}

// ReadSecStructFile reads and parses the named sidecar file.
func ReadSecStructFile(path string) (map[string]string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ReadSecStruct(path, string(contents))
}
