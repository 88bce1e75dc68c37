package config

func stringPtr(s string) *string        { return &s }
func strSlicePtr(ss []string) *[]string { return &ss }
