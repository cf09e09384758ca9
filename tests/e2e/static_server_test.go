//go:build e2e

package e2e_test

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = ginkgo.Describe("Static server", func() {
	var (
		port    int
		base    string
		session *gexec.Session
	)

	ginkgo.BeforeEach(func() {
		_, root := newRoot(map[string]string{
			"index.html":   "<!DOCTYPE html><h1>Guild Master</h1>",
			"js/game.js":   "console.log('go');",
			"assets/a.txt": "a",
		})

		port = freePort()
		base = "http://127.0.0.1:" + strconv.Itoa(port)
		session = startServer(root, port)
		waitStarted(session)

		ginkgo.DeferCleanup(func() {
			session.Interrupt()
			gomega.Eventually(session).Should(gexec.Exit())
		})
	})

	ginkgo.It("prints a startup banner", func() {
		gomega.Expect(session.Out.Contents()).To(gomega.ContainSubstring(
			fmt.Sprintf("started on http://localhost:%d", port)))
		gomega.Expect(session.Out.Contents()).To(gomega.ContainSubstring("Root directory: "))
	})

	ginkgo.It("serves files with CORS headers", func() {
		resp, body := get(base + "/js/game.js")

		gomega.Expect(resp.StatusCode).To(gomega.Equal(http.StatusOK))
		gomega.Expect(body).To(gomega.Equal("console.log('go');"))
		expectCORS(resp)
	})

	ginkgo.It("serves the index file for the root", func() {
		resp, body := get(base + "/")

		gomega.Expect(resp.StatusCode).To(gomega.Equal(http.StatusOK))
		gomega.Expect(body).To(gomega.Equal("<!DOCTYPE html><h1>Guild Master</h1>"))
	})

	ginkgo.It("lists directories without index", func() {
		resp, body := get(base + "/assets/")

		gomega.Expect(resp.StatusCode).To(gomega.Equal(http.StatusOK))
		gomega.Expect(body).To(gomega.ContainSubstring(`<a href="a.txt">a.txt</a>`))
	})

	ginkgo.It("answers 404 with CORS headers", func() {
		resp, _ := get(base + "/missing.html")

		gomega.Expect(resp.StatusCode).To(gomega.Equal(http.StatusNotFound))
		expectCORS(resp)
	})

	ginkgo.DescribeTable("never serves files outside the root",
		func(target string) {
			status, raw := rawGet(port, target)
			gomega.Expect(status).To(gomega.Equal(http.StatusNotFound))
			gomega.Expect(raw).NotTo(gomega.ContainSubstring("top secret"))
		},
		ginkgo.Entry("parent", "/../secret.txt"),
		ginkgo.Entry("deep parent", "/../../../../../../etc/passwd"),
		ginkgo.Entry("encoded dots", "/%2e%2e/secret.txt"),
		ginkgo.Entry("encoded slash", "/..%2fsecret.txt"),
		ginkgo.Entry("nested", "/js/../../secret.txt"),
	)

	ginkgo.It("refuses a second instance on the same port", func() {
		_, otherRoot := newRoot(nil)
		second := startServer(otherRoot, port)

		gomega.Eventually(second).Should(gexec.Exit(1))
		gomega.Expect(second.Err).To(gbytes.Say(fmt.Sprintf("port %d is already in use", port)))
		gomega.Expect(second.Out.Contents()).NotTo(gomega.ContainSubstring("started on"))
	})

	ginkgo.It("logs each request and shuts down cleanly on interrupt", func() {
		const requests = 3
		for i := 0; i < requests; i++ {
			get(base + "/js/game.js")
		}

		session.Interrupt()
		gomega.Eventually(session).Should(gexec.Exit(0))

		out := string(session.Out.Contents())
		gomega.Expect(strings.Count(out, "[static-server]")).To(gomega.Equal(requests))
		gomega.Expect(out).To(gomega.ContainSubstring("GET /js/game.js HTTP/1.1 200"))
		gomega.Expect(out).To(gomega.ContainSubstring(fmt.Sprintf("stopped by user after %d request(s)", requests)))
	})
})

func get(url string) (*http.Response, string) {
	client := &http.Client{
		Timeout:   5 * time.Second,
		Transport: &http.Transport{DisableKeepAlives: true},
	}

	resp, err := client.Get(url)
	gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
	return resp, string(b)
}

// rawGet sends the target verbatim, bypassing any client side path cleaning.
func rawGet(port int, target string) (int, string) {
	conn, err := net.DialTimeout("tcp", "127.0.0.1:"+strconv.Itoa(port), 5*time.Second)
	gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
	defer conn.Close()

	_, err = fmt.Fprintf(conn, "GET %s HTTP/1.1\r\nHost: localhost\r\nConnection: close\r\n\r\n", target)
	gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

	resp, err := http.ReadResponse(bufio.NewReader(conn), nil)
	gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
	return resp.StatusCode, string(b)
}

func expectCORS(resp *http.Response) {
	gomega.Expect(resp.Header.Get("Access-Control-Allow-Origin")).To(gomega.Equal("*"))
	gomega.Expect(resp.Header.Get("Access-Control-Allow-Methods")).To(gomega.Equal("GET, POST, OPTIONS"))
	gomega.Expect(resp.Header.Get("Access-Control-Allow-Headers")).To(gomega.Equal("Content-Type"))
}
