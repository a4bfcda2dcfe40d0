package fluent

import (
	"fluentmap/model"
)

// MappingConfiguration owns a mappings container and applies it only when
// something was registered.
type MappingConfiguration struct {
	FluentMappings *Container
}

// NewMappingConfiguration creates a configuration with a fresh container.
func NewMappingConfiguration(opts ...Option) *MappingConfiguration {
	return &MappingConfiguration{FluentMappings: New(opts...)}
}

// WasUsed reports whether the container received any source.
func (mc *MappingConfiguration) WasUsed() bool {
	return mc.FluentMappings != nil && mc.FluentMappings.WasUsed()
}

// Apply applies the container to target if it was used and reports whether
// it did. A registration error is returned even when nothing was registered.
func (mc *MappingConfiguration) Apply(target model.Target) (bool, error) {
	if mc.FluentMappings != nil && mc.FluentMappings.Err() != nil {
		return false, mc.FluentMappings.Err()
	}

	if !mc.WasUsed() {
		return false, nil
	}

	if err := mc.FluentMappings.Apply(target); err != nil {
		return false, err
	}

	return true, nil
}
