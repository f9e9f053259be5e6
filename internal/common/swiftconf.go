package common

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
)

// GenerateHashPathValue returns a random hex string used as a swift hash
// path suffix or prefix.
func GenerateHashPathValue(length int) (string, error) {
	b := make([]byte, (length+1)/2)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b)[:length], nil
}

// EnsureSwiftConfSecret creates a Secret holding a rendered swift.conf with
// freshly generated hash path values if it does not exist. The hash path
// values must never change once rings are built, so an existing Secret is
// left alone. If owner is non-nil, an owner reference is set.
func EnsureSwiftConfSecret(ctx context.Context, c client.Client, name, namespace string, owner metav1.Object) error {
	existing := &corev1.Secret{}
	err := c.Get(ctx, types.NamespacedName{Name: name, Namespace: namespace}, existing)
	if err == nil {
		return nil // already exists
	}
	if !errors.IsNotFound(err) {
		return err
	}

	suffix, err := GenerateHashPathValue(32)
	if err != nil {
		return err
	}
	prefix, err := GenerateHashPathValue(32)
	if err != nil {
		return err
	}
	conf := fmt.Sprintf("[swift-hash]\nswift_hash_path_suffix = %s\nswift_hash_path_prefix = %s\n", suffix, prefix)

	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Data: map[string][]byte{
			"swift.conf": []byte(conf),
		},
	}

	if owner != nil {
		_ = controllerutil.SetOwnerReference(owner, secret, c.Scheme())
	}

	return c.Create(ctx, secret)
}
