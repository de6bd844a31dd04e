// Package assembler turns generated documents into insert-ready records:
// ids, creator reference, jittered timestamps and required-field checks.
package assembler

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	apperrors "github.com/jwalitptl/healthbridge-seeder/pkg/errors"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
	"github.com/jwalitptl/healthbridge-seeder/pkg/validator"
)

// Document is any stored record the assembler can complete.
type Document interface {
	Meta() *model.Base
	SetCreator(id primitive.ObjectID)
}

type Assembler struct {
	validator validator.Validator
	src       *random.Source
	now       time.Time
	creator   primitive.ObjectID
}

func New(v validator.Validator, src *random.Source, now time.Time, creator primitive.ObjectID) *Assembler {
	return &Assembler{
		validator: v,
		src:       src,
		now:       now,
		creator:   creator,
	}
}

func (a *Assembler) Creator() primitive.ObjectID {
	return a.creator
}

// Jitter returns createdAt 1-30 days ago and updatedAt 0-7 days ago,
// never before createdAt.
func (a *Assembler) Jitter() (createdAt, updatedAt time.Time) {
	createdAt = a.now.AddDate(0, 0, -random.Between(a.src, 1, 30))
	updatedAt = a.now.AddDate(0, 0, -random.Between(a.src, 0, 7))
	if updatedAt.Before(createdAt) {
		updatedAt = createdAt
	}
	return createdAt, updatedAt
}

// Assemble completes doc in place. Timestamps already set by the caller are
// kept, only re-clamped.
func (a *Assembler) Assemble(kind string, doc Document) error {
	meta := doc.Meta()
	if meta.ID.IsZero() {
		meta.ID = primitive.NewObjectID()
	}
	if meta.CreatedAt.IsZero() {
		meta.Stamp(a.Jitter())
	} else {
		meta.Stamp(meta.CreatedAt, meta.UpdatedAt)
	}
	doc.SetCreator(a.creator)

	if err := a.validator.Validate(doc); err != nil {
		return apperrors.NewValidation(kind, err)
	}
	return nil
}

// All assembles every doc and returns the ones that passed, in order,
// plus one error per rejected doc.
func All[T any, P interface {
	*T
	Document
}](a *Assembler, kind string, docs []T) ([]T, []error) {
	kept := make([]T, 0, len(docs))
	var failed []error
	for i := range docs {
		if err := a.Assemble(kind, P(&docs[i])); err != nil {
			failed = append(failed, err)
			continue
		}
		kept = append(kept, docs[i])
	}
	return kept, failed
}
