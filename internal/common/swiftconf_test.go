package common

import (
	"context"
	"strings"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
)

func TestEnsureSwiftConfSecret_CreatesWhenMissing(t *testing.T) {
	scheme := SetupScheme()
	client := fake.NewClientBuilder().WithScheme(scheme).Build()

	err := EnsureSwiftConfSecret(context.Background(), client, "rings-swift-conf", "openstack", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	secret := &corev1.Secret{}
	err = client.Get(context.Background(), types.NamespacedName{Name: "rings-swift-conf", Namespace: "openstack"}, secret)
	if err != nil {
		t.Fatalf("secret not found: %v", err)
	}
	conf := string(secret.Data["swift.conf"])
	if !strings.Contains(conf, "[swift-hash]") {
		t.Errorf("missing swift-hash section: %q", conf)
	}
	if !strings.Contains(conf, "swift_hash_path_suffix = ") ||
		!strings.Contains(conf, "swift_hash_path_prefix = ") {
		t.Errorf("missing hash path values: %q", conf)
	}
}

func TestEnsureSwiftConfSecret_NoOpWhenExists(t *testing.T) {
	scheme := SetupScheme()
	existing := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: "rings-swift-conf", Namespace: "openstack"},
		Data:       map[string][]byte{"swift.conf": []byte("keep-me")},
	}
	client := fake.NewClientBuilder().WithScheme(scheme).WithObjects(existing).Build()

	err := EnsureSwiftConfSecret(context.Background(), client, "rings-swift-conf", "openstack", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	secret := &corev1.Secret{}
	_ = client.Get(context.Background(), types.NamespacedName{Name: "rings-swift-conf", Namespace: "openstack"}, secret)
	if string(secret.Data["swift.conf"]) != "keep-me" {
		t.Error("expected existing swift.conf to be preserved")
	}
}

func TestGenerateHashPathValue(t *testing.T) {
	v1, err := GenerateHashPathValue(32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v2, err := GenerateHashPathValue(32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v1) != 32 {
		t.Errorf("expected length 32, got %d", len(v1))
	}
	if v1 == v2 {
		t.Error("expected different values")
	}
}
