package store

import (
	"context"
	"encoding/base64"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/mrrauch/swift-ring-operator/internal/common"
)

func newStore(t *testing.T, objs ...*corev1.ConfigMap) *RingStore {
	t.Helper()
	builder := fake.NewClientBuilder().WithScheme(common.SetupScheme())
	for _, o := range objs {
		builder = builder.WithObjects(o)
	}
	return &RingStore{
		Client:    builder.Build(),
		Namespace: "openstack",
		Name:      "swift-ring-files",
		Key:       "swift-rings.tar.gz",
	}
}

func TestFetch_NotFound(t *testing.T) {
	s := newStore(t)
	data, found, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if found {
		t.Error("expected not found for missing ConfigMap")
	}
	if data != nil {
		t.Error("expected no data for missing ConfigMap")
	}
}

func TestFetch_DecodesPayload(t *testing.T) {
	payload := []byte("ring-tarball-bytes")
	cm := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "swift-ring-files", Namespace: "openstack"},
		Data: map[string]string{
			"swift-rings.tar.gz": base64.StdEncoding.EncodeToString(payload),
		},
	}
	s := newStore(t, cm)

	data, found, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if !found {
		t.Fatal("expected ConfigMap to be found")
	}
	if string(data) != string(payload) {
		t.Errorf("got %q, want %q", data, payload)
	}
}

func TestFetch_MissingKey(t *testing.T) {
	cm := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "swift-ring-files", Namespace: "openstack"},
	}
	s := newStore(t, cm)
	if _, _, err := s.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for missing tarball key")
	}
}

func TestFetch_BadBase64(t *testing.T) {
	cm := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "swift-ring-files", Namespace: "openstack"},
		Data:       map[string]string{"swift-rings.tar.gz": "not base64!"},
	}
	s := newStore(t, cm)
	if _, _, err := s.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for undecodable payload")
	}
}

func TestPush_CreatesWithOwner(t *testing.T) {
	s := newStore(t)
	s.Owner = &metav1.OwnerReference{
		APIVersion: "swift.openstack.k8s.io/v1alpha1",
		Kind:       "SwiftRing",
		Name:       "rings",
		UID:        "abc-123",
	}

	if err := s.Push(context.Background(), []byte("payload")); err != nil {
		t.Fatalf("push error: %v", err)
	}

	cm := &corev1.ConfigMap{}
	err := s.Client.Get(context.Background(), types.NamespacedName{Name: "swift-ring-files", Namespace: "openstack"}, cm)
	if err != nil {
		t.Fatalf("expected ConfigMap to be created: %v", err)
	}
	if len(cm.OwnerReferences) != 1 || cm.OwnerReferences[0].Name != "rings" {
		t.Errorf("unexpected owner references: %+v", cm.OwnerReferences)
	}
	if cm.Annotations[GeneratedAtAnnotation] == "" {
		t.Error("expected generated-at annotation")
	}
	decoded, err := base64.StdEncoding.DecodeString(cm.Data["swift-rings.tar.gz"])
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if string(decoded) != "payload" {
		t.Errorf("got %q, want %q", decoded, "payload")
	}
}

func TestPush_UpdatesExisting(t *testing.T) {
	cm := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "swift-ring-files", Namespace: "openstack"},
		Data: map[string]string{
			"swift-rings.tar.gz": base64.StdEncoding.EncodeToString([]byte("old")),
		},
	}
	s := newStore(t, cm)

	if err := s.Push(context.Background(), []byte("new")); err != nil {
		t.Fatalf("push error: %v", err)
	}

	got := &corev1.ConfigMap{}
	err := s.Client.Get(context.Background(), types.NamespacedName{Name: "swift-ring-files", Namespace: "openstack"}, got)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := base64.StdEncoding.DecodeString(got.Data["swift-rings.tar.gz"])
	if err != nil {
		t.Fatal(err)
	}
	if string(decoded) != "new" {
		t.Errorf("got %q, want %q", decoded, "new")
	}
}
