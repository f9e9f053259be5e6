package controller

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	swiftv1alpha1 "github.com/mrrauch/swift-ring-operator/api/v1alpha1"
	"github.com/mrrauch/swift-ring-operator/internal/common"
	"github.com/mrrauch/swift-ring-operator/internal/images"
)

// SwiftRingReconciler reconciles a SwiftRing object.
type SwiftRingReconciler struct {
	client.Client
	Scheme *runtime.Scheme
}

// Reconcile handles the reconciliation loop for SwiftRing resources.
func (r *SwiftRingReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	instance := &swiftv1alpha1.SwiftRing{}
	if err := r.Get(ctx, req.NamespacedName, instance); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	// Handle deletion
	if !instance.DeletionTimestamp.IsZero() {
		if common.HasFinalizer(instance, common.FinalizerName) {
			common.RemoveFinalizer(instance, common.FinalizerName)
			if err := r.Update(ctx, instance); err != nil {
				return ctrl.Result{}, err
			}
		}
		return ctrl.Result{}, nil
	}

	// Ensure finalizer
	if !common.HasFinalizer(instance, common.FinalizerName) {
		common.AddFinalizer(instance, common.FinalizerName)
		if err := r.Update(ctx, instance); err != nil {
			return ctrl.Result{}, err
		}
		return ctrl.Result{Requeue: true}, nil
	}

	// Set status to Reconciling
	instance.Status.Conditions = common.SetCondition(
		instance.Status.Conditions, "Ready",
		metav1.ConditionFalse, "Reconciling", "Reconciliation in progress",
		instance.Generation,
	)

	// Ensure swift.conf secret with the hash path values
	swiftConfSecret := instance.Spec.SwiftConfSecret
	if swiftConfSecret == "" {
		swiftConfSecret = fmt.Sprintf("%s-swift-conf", instance.Name)
	}
	if err := common.EnsureSwiftConfSecret(ctx, r.Client, swiftConfSecret, instance.Namespace, instance); err != nil {
		return ctrl.Result{}, err
	}

	// Ensure devices ConfigMap
	devicesFile := renderDevicesFile(instance.Spec.Devices)
	if err := r.ensureDevicesConfigMap(ctx, instance, devicesFile); err != nil {
		return ctrl.Result{}, err
	}

	// Ensure ring-sync Job; the job name carries a hash of the ring inputs so
	// device or parameter changes trigger a new sync.
	jobName := fmt.Sprintf("%s-ring-sync-%s", instance.Name, ringInputHash(instance, devicesFile))
	if err := r.ensureRingSyncJob(ctx, instance, jobName, swiftConfSecret); err != nil {
		return ctrl.Result{}, err
	}

	// Wait for ring-sync to complete
	syncDone, result, err := waitForJobCompletion(ctx, r.Client, jobName, instance.Namespace, 5*time.Second, 10*time.Second)
	if err != nil {
		return ctrl.Result{}, err
	}
	if !syncDone {
		if err := r.Status().Update(ctx, instance); err != nil {
			logger.Error(err, "failed to update status")
			return ctrl.Result{}, err
		}
		return result, nil
	}

	now := metav1.Now()
	instance.Status.DeviceCount = int32(len(instance.Spec.Devices))
	instance.Status.LastSyncTime = &now
	instance.Status.Conditions = common.SetCondition(
		instance.Status.Conditions, "Ready",
		metav1.ConditionTrue, "RingSyncComplete", "Ring files are up to date",
		instance.Generation,
	)

	instance.Status.ObservedGeneration = instance.Generation
	if err := r.Status().Update(ctx, instance); err != nil {
		logger.Error(err, "failed to update status")
		return ctrl.Result{}, err
	}

	return ctrl.Result{}, nil
}

func (r *SwiftRingReconciler) ensureDevicesConfigMap(ctx context.Context, instance *swiftv1alpha1.SwiftRing, devicesFile string) error {
	cm := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      fmt.Sprintf("%s-ring-devices", instance.Name),
			Namespace: instance.Namespace,
		},
	}
	_, err := controllerutil.CreateOrUpdate(ctx, r.Client, cm, func() error {
		cm.Labels = labelsForSwiftRing(instance.Name)
		cm.Data = map[string]string{
			"devices.txt": devicesFile,
		}
		return controllerutil.SetOwnerReference(instance, cm, r.Scheme)
	})
	return err
}

func (r *SwiftRingReconciler) ensureRingSyncJob(ctx context.Context, instance *swiftv1alpha1.SwiftRing, jobName, swiftConfSecret string) error {
	image := images.ImageOrDefault(instance.Spec.Image, images.DefaultSwiftRingTool)
	partPower, replicas, minPartHours := ringParams(instance)

	confMode := int32(0o644)
	backoffLimit := int32(4)
	ttl := int32(600)

	job := &batchv1.Job{
		ObjectMeta: metav1.ObjectMeta{
			Name:      jobName,
			Namespace: instance.Namespace,
		},
	}
	_, err := controllerutil.CreateOrUpdate(ctx, r.Client, job, func() error {
		if !job.CreationTimestamp.IsZero() {
			// Job specs are immutable; leave an existing job alone.
			return controllerutil.SetOwnerReference(instance, job, r.Scheme)
		}
		job.Labels = labelsForSwiftRing(instance.Name)
		job.Spec = batchv1.JobSpec{
			BackoffLimit:            &backoffLimit,
			TTLSecondsAfterFinished: &ttl,
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: labelsForSwiftRing(instance.Name),
				},
				Spec: corev1.PodSpec{
					RestartPolicy: corev1.RestartPolicyOnFailure,
					Containers: []corev1.Container{
						{
							Name:    "ring-sync",
							Image:   image,
							Command: []string{"swift-ring-tool", "all"},
							Env: []corev1.EnvVar{
								{Name: "NAMESPACE", Value: instance.Namespace},
								{Name: "RING_CONFIGMAP", Value: ringConfigMapName(instance)},
								{Name: "SWIFT_RING_OWNER_API_VERSION", Value: swiftv1alpha1.GroupVersion.String()},
								{Name: "SWIFT_RING_OWNER_KIND", Value: "SwiftRing"},
								{Name: "SWIFT_RING_OWNER_NAME", Value: instance.Name},
								{Name: "SWIFT_RING_OWNER_UID", Value: string(instance.UID)},
								{Name: "SWIFT_PART_POWER", Value: fmt.Sprintf("%d", partPower)},
								{Name: "SWIFT_REPLICAS", Value: fmt.Sprintf("%d", replicas)},
								{Name: "SWIFT_MIN_PART_HOURS", Value: fmt.Sprintf("%d", minPartHours)},
								{Name: "SWIFT_DEVICES_FILE", Value: "/var/lib/config-data/ring-devices/devices.txt"},
								{Name: "SWIFT_RING_DIR", Value: "/etc/swift"},
							},
							VolumeMounts: []corev1.VolumeMount{
								{Name: "etc-swift", MountPath: "/etc/swift"},
								{Name: "swiftconf", SubPath: "swift.conf", MountPath: "/etc/swift/swift.conf", ReadOnly: true},
								{Name: "ring-devices", MountPath: "/var/lib/config-data/ring-devices", ReadOnly: true},
							},
						},
					},
					Volumes: []corev1.Volume{
						{
							Name: "etc-swift",
							VolumeSource: corev1.VolumeSource{
								EmptyDir: &corev1.EmptyDirVolumeSource{},
							},
						},
						{
							Name: "swiftconf",
							VolumeSource: corev1.VolumeSource{
								Secret: &corev1.SecretVolumeSource{
									SecretName:  swiftConfSecret,
									DefaultMode: &confMode,
									Items: []corev1.KeyToPath{
										{Key: "swift.conf", Path: "swift.conf"},
									},
								},
							},
						},
						{
							Name: "ring-devices",
							VolumeSource: corev1.VolumeSource{
								ConfigMap: &corev1.ConfigMapVolumeSource{
									LocalObjectReference: corev1.LocalObjectReference{
										Name: fmt.Sprintf("%s-ring-devices", instance.Name),
									},
								},
							},
						},
					},
				},
			},
		}
		return controllerutil.SetOwnerReference(instance, job, r.Scheme)
	})
	return err
}

// SetupWithManager sets up the controller with the Manager.
func (r *SwiftRingReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&swiftv1alpha1.SwiftRing{}).
		Owns(&batchv1.Job{}).
		Owns(&corev1.ConfigMap{}).
		Owns(&corev1.Secret{}).
		Complete(r)
}

func ringConfigMapName(instance *swiftv1alpha1.SwiftRing) string {
	if instance.Spec.RingConfigMap != "" {
		return instance.Spec.RingConfigMap
	}
	return fmt.Sprintf("%s-ring-files", instance.Name)
}

// renderDevicesFile produces the devices file consumed by swift-ring-tool,
// one "<region> <zone> <host> <device> <weight>" line per device.
func renderDevicesFile(devices []swiftv1alpha1.RingDevice) string {
	var b strings.Builder
	for _, d := range devices {
		region := d.Region
		if region == 0 {
			region = 1
		}
		zone := d.Zone
		if zone == 0 {
			zone = 1
		}
		weight := d.Weight
		if weight == "" {
			weight = "100.0"
		}
		fmt.Fprintf(&b, "%d %d %s %s %s\n", region, zone, d.Host, d.Device, weight)
	}
	return b.String()
}

// ringParams returns the ring-builder parameters with defaults applied.
func ringParams(instance *swiftv1alpha1.SwiftRing) (partPower, replicas, minPartHours int64) {
	partPower, replicas, minPartHours = 10, 3, 1
	if instance.Spec.PartPower != nil {
		partPower = *instance.Spec.PartPower
	}
	if instance.Spec.RingReplicas != nil {
		replicas = *instance.Spec.RingReplicas
	}
	if instance.Spec.MinPartHours != nil {
		minPartHours = *instance.Spec.MinPartHours
	}
	return partPower, replicas, minPartHours
}

// ringInputHash returns a short hash over everything that feeds the rings so
// a changed spec yields a new sync job name.
func ringInputHash(instance *swiftv1alpha1.SwiftRing, devicesFile string) string {
	partPower, replicas, minPartHours := ringParams(instance)
	h := sha256.New()
	fmt.Fprintf(h, "%d/%d/%d\n", partPower, replicas, minPartHours)
	h.Write([]byte(devicesFile))
	return hex.EncodeToString(h.Sum(nil))[:8]
}

func labelsForSwiftRing(name string) map[string]string {
	return map[string]string{
		"app.kubernetes.io/name":       "swift-ring",
		"app.kubernetes.io/instance":   name,
		"app.kubernetes.io/managed-by": "swift-ring-operator",
	}
}
