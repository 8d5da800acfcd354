// Package uid converts between uuid.UUID and Kubernetes object UIDs.
package uid

import (
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/jvs-project/uuidgen/pkg/uuid"
)

// ToUID renders u in the canonical form used for metadata.uid.
func ToUID(u uuid.UUID) types.UID {
	return types.UID(u.String())
}

// FromUID parses a metadata.uid value.
func FromUID(uid types.UID) (uuid.UUID, error) {
	u, err := uuid.Parse(string(uid))
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse uid: %w", err)
	}
	return u, nil
}

// Ensure returns the UID already set on obj if it parses as a UUID.
// Otherwise it generates a fresh version 4 UUID and stores it on obj.
func Ensure(obj metav1.Object) (uuid.UUID, error) {
	if existing := obj.GetUID(); existing != "" {
		if u, err := FromUID(existing); err == nil {
			return u, nil
		}
	}
	u, err := uuid.New()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate uid: %w", err)
	}
	obj.SetUID(ToUID(u))
	return u, nil
}
