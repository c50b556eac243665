package xml

import (
	"fmt"
	"strings"
	"time"

	"github.com/ochairo/resolvereport/internal/domain/entities"
)

// Element and attribute names of the persisted report format
const (
	elementModule   = "module"
	elementRevision = "revision"
	elementArtifact = "artifact"

	attrOrganisation = "organisation"
	attrName         = "name"
	attrDefault      = "default"
	attrPubdate      = "pubdate"
	attrError        = "error"
	attrEvicted      = "evicted"
	attrType         = "type"
	attrExt          = "ext"
	attrStatus       = "status"

	statusFailed = "failed"
)

type phase int

const (
	phaseStart phase = iota
	phaseInModule
	phaseInRevision
	phaseInRevisionSkipped
)

func (p phase) String() string {
	switch p {
	case phaseStart:
		return "start"
	case phaseInModule:
		return "in-module"
	case phaseInRevision:
		return "in-revision"
	case phaseInRevisionSkipped:
		return "in-revision-skipped"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// attributes holds the attributes of one start element by local name
type attributes map[string]string

func (a attributes) lookup(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}

func (a attributes) require(element, name string) (string, error) {
	v, ok := a[name]
	if !ok {
		return "", fmt.Errorf("%w %q on <%s>", entities.ErrMissingAttribute, name, element)
	}
	return v, nil
}

// parserState is the complete state of a report parse between two elements.
// Transitions return a new value and never mutate the receiver.
type parserState struct {
	phase        phase
	organisation string
	module       string
	revision     entities.ModuleRevisionID
	pubdate      time.Time
}

// emitted is what a transition contributes to the report being built
type emitted struct {
	revision  *entities.ModuleRevisionID
	isDefault bool
	artifact  *entities.Artifact
}

func (e emitted) applyTo(report *entities.ParsedReport) {
	if e.revision != nil {
		report.AddRevision(*e.revision, e.isDefault)
	}
	if e.artifact != nil {
		report.Artifacts = append(report.Artifacts, *e.artifact)
	}
}

func (s parserState) startElement(name string, attrs attributes) (parserState, emitted, error) {
	switch name {
	case elementModule:
		return s.enterModule(attrs)
	case elementRevision:
		return s.enterRevision(attrs)
	case elementArtifact:
		return s.visitArtifact(attrs)
	default:
		return s, emitted{}, nil
	}
}

func (s parserState) endElement(name string) parserState {
	switch {
	case name == elementRevision && (s.phase == phaseInRevision || s.phase == phaseInRevisionSkipped):
		s.phase = phaseInModule
		s.revision = entities.ModuleRevisionID{}
		s.pubdate = time.Time{}
	case name == elementModule && s.phase != phaseStart:
		return parserState{phase: phaseStart}
	}
	return s
}

func (s parserState) enterModule(attrs attributes) (parserState, emitted, error) {
	organisation, err := attrs.require(elementModule, attrOrganisation)
	if err != nil {
		return s, emitted{}, err
	}
	module, err := attrs.require(elementModule, attrName)
	if err != nil {
		return s, emitted{}, err
	}

	return parserState{
		phase:        phaseInModule,
		organisation: organisation,
		module:       module,
	}, emitted{}, nil
}

func (s parserState) enterRevision(attrs attributes) (parserState, emitted, error) {
	if s.phase != phaseInModule {
		return s, emitted{}, fmt.Errorf("%w <%s> in state %s", entities.ErrUnexpectedElement, elementRevision, s.phase)
	}

	revision, err := attrs.require(elementRevision, attrName)
	if err != nil {
		return s, emitted{}, err
	}

	next := s
	next.revision = entities.NewModuleRevisionID(s.organisation, s.module, revision)

	_, hasError := attrs.lookup(attrError)
	_, evicted := attrs.lookup(attrEvicted)
	if hasError || evicted {
		next.phase = phaseInRevisionSkipped
		next.pubdate = time.Time{}
		return next, emitted{}, nil
	}

	raw, ok := attrs.lookup(attrPubdate)
	if !ok {
		return s, emitted{}, fmt.Errorf("%w %q on <%s> %s", entities.ErrMissingAttribute, attrPubdate, elementRevision, next.revision)
	}
	pubdate, err := time.Parse(entities.PublicationDateLayout, raw)
	// time.Parse accepts a fractional second the layout does not name
	if err != nil || pubdate.Format(entities.PublicationDateLayout) != raw {
		return s, emitted{}, &entities.MalformedDateError{
			Organisation: s.organisation,
			Module:       s.module,
			Revision:     revision,
			Value:        raw,
		}
	}

	defaultValue, _ := attrs.lookup(attrDefault)
	mrid := next.revision

	next.phase = phaseInRevision
	next.pubdate = pubdate
	return next, emitted{revision: &mrid, isDefault: strings.EqualFold(defaultValue, "true")}, nil
}

func (s parserState) visitArtifact(attrs attributes) (parserState, emitted, error) {
	switch s.phase {
	case phaseInRevisionSkipped:
		return s, emitted{}, nil
	case phaseInRevision:
	default:
		return s, emitted{}, fmt.Errorf("%w <%s> in state %s", entities.ErrUnexpectedElement, elementArtifact, s.phase)
	}

	if status, _ := attrs.lookup(attrStatus); status == statusFailed {
		return s, emitted{}, nil
	}

	name, err := attrs.require(elementArtifact, attrName)
	if err != nil {
		return s, emitted{}, err
	}
	artifactType, err := attrs.require(elementArtifact, attrType)
	if err != nil {
		return s, emitted{}, err
	}
	ext, err := attrs.require(elementArtifact, attrExt)
	if err != nil {
		return s, emitted{}, err
	}

	return s, emitted{artifact: &entities.Artifact{
		Revision:        s.revision,
		PublicationDate: s.pubdate,
		Name:            name,
		Type:            artifactType,
		Ext:             ext,
	}}, nil
}
