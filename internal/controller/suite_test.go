// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package controller

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	sitev1alpha1 "github.com/lexfrei/studio-site/api/v1alpha1"
)

var k8sClient client.Client

func TestControllers(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Controller Suite")
}

var _ = BeforeSuite(func() {
	scheme := runtime.NewScheme()
	Expect(clientgoscheme.AddToScheme(scheme)).To(Succeed())
	Expect(sitev1alpha1.AddToScheme(scheme)).To(Succeed())

	k8sClient = fake.NewClientBuilder().
		WithScheme(scheme).
		WithStatusSubresource(&sitev1alpha1.ContactRequest{}).
		Build()
	Expect(k8sClient).NotTo(BeNil())
})
