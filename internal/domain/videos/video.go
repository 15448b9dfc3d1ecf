package videodomain

// Video is a single generated clip. Data holds the payload once it has been
// received inline or downloaded from URI.
type Video struct {
	URI      string
	MIMEType string
	Data     []byte
}

func (v *Video) HasData() bool {
	return v != nil && len(v.Data) > 0
}
