package entities

import "fmt"

// ModuleID identifies a module independently of its revision
type ModuleID struct {
	Organisation string
	Name         string
}

// NewModuleID creates a module identity
func NewModuleID(organisation, name string) ModuleID {
	return ModuleID{Organisation: organisation, Name: name}
}

func (m ModuleID) String() string {
	return fmt.Sprintf("%s#%s", m.Organisation, m.Name)
}

// ModuleRevisionID identifies one revision of a module.
// It is comparable and can be used as a map key.
type ModuleRevisionID struct {
	Organisation string
	Name         string
	Revision     string
}

// NewModuleRevisionID creates a module revision identity
func NewModuleRevisionID(organisation, name, revision string) ModuleRevisionID {
	return ModuleRevisionID{Organisation: organisation, Name: name, Revision: revision}
}

// ModuleID returns the revision-less identity
func (m ModuleRevisionID) ModuleID() ModuleID {
	return ModuleID{Organisation: m.Organisation, Name: m.Name}
}

func (m ModuleRevisionID) String() string {
	return fmt.Sprintf("%s#%s;%s", m.Organisation, m.Name, m.Revision)
}
