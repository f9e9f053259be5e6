// Package store persists the ring tarball in a Kubernetes ConfigMap. The
// tarball is opaque bytes; it is base64-encoded into a single data key.
package store

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// GeneratedAtAnnotation records when the ring tarball was last pushed.
const GeneratedAtAnnotation = "swift.openstack.k8s.io/generated-at"

// RingStore reads and writes the ring tarball ConfigMap.
type RingStore struct {
	Client    client.Client
	Namespace string
	Name      string
	Key       string

	// Owner, if non-nil, is attached as an owner reference on create.
	Owner *metav1.OwnerReference
}

// Fetch returns the ring tarball and whether the ConfigMap exists. A missing
// ConfigMap is not an error; any other API failure is.
func (s *RingStore) Fetch(ctx context.Context) ([]byte, bool, error) {
	cm := &corev1.ConfigMap{}
	err := s.Client.Get(ctx, types.NamespacedName{Name: s.Name, Namespace: s.Namespace}, cm)
	if apierrors.IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get configmap %s/%s: %w", s.Namespace, s.Name, err)
	}
	encoded, ok := cm.Data[s.Key]
	if !ok {
		return nil, true, fmt.Errorf("configmap %s/%s has no key %q", s.Namespace, s.Name, s.Key)
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, true, fmt.Errorf("decode %s in configmap %s/%s: %w", s.Key, s.Namespace, s.Name, err)
	}
	return data, true, nil
}

// Push stores the ring tarball, creating the ConfigMap if it does not exist
// and updating it otherwise.
func (s *RingStore) Push(ctx context.Context, data []byte) error {
	encoded := base64.StdEncoding.EncodeToString(data)
	now := time.Now().UTC().Format(time.RFC3339)

	cm := &corev1.ConfigMap{}
	err := s.Client.Get(ctx, types.NamespacedName{Name: s.Name, Namespace: s.Namespace}, cm)
	if apierrors.IsNotFound(err) {
		cm = &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{
				Name:        s.Name,
				Namespace:   s.Namespace,
				Annotations: map[string]string{GeneratedAtAnnotation: now},
			},
			Data: map[string]string{s.Key: encoded},
		}
		if s.Owner != nil {
			cm.OwnerReferences = []metav1.OwnerReference{*s.Owner}
		}
		if err := s.Client.Create(ctx, cm); err != nil {
			return fmt.Errorf("create configmap %s/%s: %w", s.Namespace, s.Name, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("get configmap %s/%s: %w", s.Namespace, s.Name, err)
	}

	if cm.Data == nil {
		cm.Data = map[string]string{}
	}
	cm.Data[s.Key] = encoded
	if cm.Annotations == nil {
		cm.Annotations = map[string]string{}
	}
	cm.Annotations[GeneratedAtAnnotation] = now
	if err := s.Client.Update(ctx, cm); err != nil {
		return fmt.Errorf("update configmap %s/%s: %w", s.Namespace, s.Name, err)
	}
	return nil
}
