package domain

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BootcampRef is a reference to a bootcamp. It is stored as an ObjectID and
// holds the bootcamp name and description when the reference was resolved.
type BootcampRef struct {
	ID          primitive.ObjectID
	Name        string
	Description string
}

// Resolved reports whether the referenced document was loaded.
func (r BootcampRef) Resolved() bool {
	return r.Name != "" || r.Description != ""
}

// MarshalBSONValue stores only the id
func (r BootcampRef) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(r.ID)
}

// UnmarshalBSONValue accepts either a bare id or an embedded bootcamp document
func (r *BootcampRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.ObjectID:
		id, ok := bson.RawValue{Type: t, Value: data}.ObjectIDOK()
		if !ok {
			return fmt.Errorf("can't decode bootcamp reference")
		}
		*r = BootcampRef{ID: id}
	case bsontype.EmbeddedDocument:
		var doc struct {
			ID          primitive.ObjectID `bson:"_id"`
			Name        string             `bson:"name"`
			Description string             `bson:"description"`
		}
		if err := bson.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("can't decode bootcamp document: %w", err)
		}
		*r = BootcampRef{ID: doc.ID, Name: doc.Name, Description: doc.Description}
	case bsontype.Null, bsontype.Undefined:
		*r = BootcampRef{}
	default:
		return fmt.Errorf("unexpected bson type %s for bootcamp reference", t)
	}
	return nil
}

type resolvedBootcampRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MarshalJSON renders the id, or the resolved subset of the bootcamp
func (r BootcampRef) MarshalJSON() ([]byte, error) {
	if !r.Resolved() {
		return json.Marshal(r.ID.Hex())
	}
	return json.Marshal(resolvedBootcampRef{ID: r.ID.Hex(), Name: r.Name, Description: r.Description})
}

// UnmarshalJSON is the inverse of MarshalJSON
func (r *BootcampRef) UnmarshalJSON(b []byte) error {
	var hex string
	if err := json.Unmarshal(b, &hex); err == nil {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return err
		}
		*r = BootcampRef{ID: id}
		return nil
	}

	var doc resolvedBootcampRef
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	id, err := primitive.ObjectIDFromHex(doc.ID)
	if err != nil {
		return err
	}
	*r = BootcampRef{ID: id, Name: doc.Name, Description: doc.Description}
	return nil
}
