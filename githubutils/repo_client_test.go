package githubutils_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	"github.com/solo-io/release-utils/errors"
	"github.com/solo-io/release-utils/githubutils"
)

var _ = Describe("repo client", func() {

	const (
		owner = "solo-io"
		repo  = "testrepo"
		sha   = "9065a9a84e286ea7f067f4fc240944b0a4d4c82a"
		token = "s3cr3t"
	)

	var (
		ctx    = context.Background()
		server *ghttp.Server
		client githubutils.RepoClient
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		githubClient, err := githubutils.GetClient(ctx, token, server.URL())
		Expect(err).NotTo(HaveOccurred())
		client = githubutils.NewRepoClient(githubClient, owner, repo)
	})

	AfterEach(func() {
		server.Close()
	})

	Context("GetLatestRelease", func() {
		It("returns the latest release", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/repos/solo-io/testrepo/releases/latest"),
				ghttp.VerifyHeaderKV("Authorization", "Bearer "+token),
				ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]interface{}{
					"tag_name":         "2103.0005",
					"name":             "v2103.0005",
					"target_commitish": sha,
					"html_url":         "https://github.com/solo-io/testrepo/releases/tag/2103.0005",
					"published_at":     "2021-03-10T10:00:00Z",
				}),
			))

			release, err := client.GetLatestRelease(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(release.TagName).To(Equal("2103.0005"))
			Expect(release.TargetCommitish).To(Equal(sha))
			Expect(release.PublishedAt).To(BeTemporally("==", time.Date(2021, time.March, 10, 10, 0, 0, 0, time.UTC)))
		})

		It("reports a missing release as not found", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/repos/solo-io/testrepo/releases/latest"),
				ghttp.RespondWithJSONEncoded(http.StatusNotFound, map[string]string{"message": "Not Found"}),
			))

			_, err := client.GetLatestRelease(ctx)
			Expect(err).To(errors.HaveInErrorChain(errors.NotFound))
		})

		It("reports a bad token as an auth failure", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/repos/solo-io/testrepo/releases/latest"),
				ghttp.RespondWithJSONEncoded(http.StatusUnauthorized, map[string]string{"message": "Bad credentials"}),
			))

			_, err := client.GetLatestRelease(ctx)
			Expect(err).To(errors.HaveInErrorChain(errors.AuthFailure))
		})
	})

	Context("CreateRelease", func() {
		It("creates a release at the target commit", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, "/repos/solo-io/testrepo/releases"),
				func(w http.ResponseWriter, r *http.Request) {
					defer GinkgoRecover()
					body, err := io.ReadAll(r.Body)
					Expect(err).NotTo(HaveOccurred())
					var request map[string]interface{}
					Expect(json.Unmarshal(body, &request)).To(Succeed())
					Expect(request).To(HaveKeyWithValue("tag_name", "2104.0001"))
					Expect(request).To(HaveKeyWithValue("name", "v2104.0001"))
					Expect(request).To(HaveKeyWithValue("target_commitish", sha))
					Expect(request).To(HaveKeyWithValue("generate_release_notes", true))
					Expect(request).NotTo(HaveKey("body"))
				},
				ghttp.RespondWithJSONEncoded(http.StatusCreated, map[string]interface{}{
					"tag_name":     "2104.0001",
					"html_url":     "https://github.com/solo-io/testrepo/releases/tag/2104.0001",
					"body":         "## What's Changed",
					"published_at": "2021-04-02T10:00:00Z",
				}),
			))

			release, err := client.CreateRelease(ctx, githubutils.ReleaseSpec{
				TagName:         "2104.0001",
				Name:            "v2104.0001",
				TargetCommitish: sha,
				GenerateNotes:   true,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(release.HtmlUrl).To(Equal("https://github.com/solo-io/testrepo/releases/tag/2104.0001"))
			Expect(release.Body).To(Equal("## What's Changed"))
		})

		It("surfaces a tag collision", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, "/repos/solo-io/testrepo/releases"),
				ghttp.RespondWithJSONEncoded(http.StatusUnprocessableEntity, map[string]interface{}{
					"message": "Validation Failed",
					"errors":  []map[string]string{{"resource": "Release", "code": "already_exists", "field": "tag_name"}},
				}),
			))

			_, err := client.CreateRelease(ctx, githubutils.ReleaseSpec{TagName: "2104.0001"})
			Expect(err).To(errors.HaveInErrorChain(errors.Unexpected))
		})
	})

	Context("commit timestamps", func() {
		It("reads the committer date", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/repos/solo-io/testrepo/commits/"+sha),
				ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]interface{}{
					"sha": sha,
					"commit": map[string]interface{}{
						"committer": map[string]interface{}{"name": "alice", "date": "2021-03-09T08:00:00Z"},
					},
				}),
			))

			t, err := client.GetCommitTime(ctx, sha)
			Expect(err).NotTo(HaveOccurred())
			Expect(t).To(BeTemporally("==", time.Date(2021, time.March, 9, 8, 0, 0, 0, time.UTC)))
		})

		It("reads the merge time of the pull request containing a commit", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/search/issues"),
				ghttp.VerifyFormKV("q", githubutils.MergedCommitQuery(owner, repo, sha)),
				ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]interface{}{
					"total_count": 1,
					"items": []map[string]interface{}{
						{"number": 7, "closed_at": "2021-03-09T09:30:00Z"},
					},
				}),
			))

			t, err := client.FindMergeTime(ctx, sha)
			Expect(err).NotTo(HaveOccurred())
			Expect(t).To(BeTemporally("==", time.Date(2021, time.March, 9, 9, 30, 0, 0, time.UTC)))
		})

		It("reports a commit without a merged pull request as not found", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/search/issues"),
				ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]interface{}{"total_count": 0, "items": []interface{}{}}),
			))

			_, err := client.FindMergeTime(ctx, sha)
			Expect(err).To(errors.HaveInErrorChain(errors.NotFound))
		})
	})

	Context("SearchMergedPullRequests", func() {
		query := githubutils.MergedPullRequestQuery{
			Owner: owner,
			Repo:  repo,
			Base:  "main",
			Since: time.Date(2021, time.March, 10, 10, 0, 0, 0, time.UTC),
			Until: time.Date(2021, time.April, 2, 10, 0, 0, 0, time.UTC),
		}

		pr := func(number int, title string) map[string]interface{} {
			return map[string]interface{}{
				"number":    number,
				"title":     title,
				"body":      fmt.Sprintf("body of %d", number),
				"html_url":  fmt.Sprintf("https://github.com/solo-io/testrepo/pull/%d", number),
				"user":      map[string]interface{}{"login": "alice"},
				"closed_at": "2021-03-20T10:00:00Z",
			}
		}

		It("follows pagination in order", func() {
			nextPage := http.Header{}
			nextPage.Set("Link", fmt.Sprintf(`<%s/search/issues?page=2&per_page=100>; rel="next"`, server.URL()))
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest(http.MethodGet, "/search/issues"),
					ghttp.VerifyFormKV("q", query.String()),
					ghttp.VerifyFormKV("per_page", "100"),
					ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]interface{}{
						"total_count": 2,
						"items":       []map[string]interface{}{pr(1, "Fix bug")},
					}, nextPage),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest(http.MethodGet, "/search/issues"),
					ghttp.VerifyFormKV("page", "2"),
					ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]interface{}{
						"total_count": 2,
						"items":       []map[string]interface{}{pr(2, "Add feature")},
					}),
				),
			)

			prs, err := client.SearchMergedPullRequests(ctx, query)
			Expect(err).NotTo(HaveOccurred())
			Expect(prs).To(HaveLen(2))
			Expect(prs[0].Title).To(Equal("Fix bug"))
			Expect(prs[0].Author).To(Equal("alice"))
			Expect(prs[0].HtmlUrl).To(Equal("https://github.com/solo-io/testrepo/pull/1"))
			Expect(prs[0].Body).To(Equal("body of 1"))
			Expect(prs[1].Number).To(Equal(2))
		})
	})
})

var _ = Describe("repo utils", func() {
	It("parses owner/repo", func() {
		owner, repo, err := githubutils.ParseRepository("solo-io/gloo")
		Expect(err).NotTo(HaveOccurred())
		Expect(owner).To(Equal("solo-io"))
		Expect(repo).To(Equal("gloo"))
	})

	It("rejects malformed repositories", func() {
		for _, bad := range []string{"", "solo-io", "solo-io/", "/gloo", "a/b/c"} {
			_, _, err := githubutils.ParseRepository(bad)
			Expect(err).To(errors.HaveInErrorChain(errors.MalformedInput), bad)
		}
	})

	It("renders the merged pull request search query", func() {
		query := githubutils.MergedPullRequestQuery{
			Owner: "o",
			Repo:  "r",
			Base:  "main",
			Since: time.Date(2021, time.March, 10, 10, 0, 0, 1000000, time.UTC),
			Until: time.Date(2021, time.April, 2, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60)),
		}
		Expect(query.String()).To(Equal("repo:o/r is:pr is:merged merged:2021-03-10T10:00:00.001Z..2021-04-02T10:00:00.000Z base:main"))
	})
})
