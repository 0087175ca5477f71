package a2a

/*
Artifact is the container for terminal-state task output, holding one or
more parts.
*/
type Artifact struct {
	ArtifactID  string         `json:"artifact_id,omitempty"`
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Parts       []Part         `json:"parts"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

func NewArtifact(artifactID string, parts ...Part) Artifact {
	return Artifact{
		ArtifactID: artifactID,
		Parts:      parts,
	}
}
