package versionutils_test

import (
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/solo-io/release-utils/versionutils"
)

var _ = Describe("CalendarVersion", func() {

	march2021 := time.Date(2021, time.March, 15, 12, 0, 0, 0, time.UTC)
	april2021 := time.Date(2021, time.April, 1, 0, 0, 0, 0, time.UTC)

	Context("NextVersionAt", func() {

		DescribeTable("computes the next version",
			func(previous string, now time.Time, expected string) {
				Expect(versionutils.NextVersionAt(previous, now)).To(Equal(expected))
			},
			Entry("same month increments", "2103.0004", march2021, "2103.0005"),
			Entry("new month resets", "2102.0012", march2021, "2103.0001"),
			Entry("new year resets", "2012.0031", time.Date(2021, time.January, 3, 0, 0, 0, 0, time.UTC), "2101.0001"),
			Entry("unparsable counter counts as zero", "2103.abcd", march2021, "2103.0001"),
			Entry("trailing garbage after the counter is ignored", "2103.0004x", march2021, "2103.0005"),
			Entry("extra fields after the counter are ignored", "2103.0004.1", march2021, "2103.0005"),
			Entry("signed counter", "2103.+4", march2021, "2103.0005"),
			Entry("negative counter counts as zero", "2103.-4", march2021, "2103.0001"),
			Entry("missing counter counts as zero", "2103", march2021, "2103.0001"),
			Entry("empty previous", "", march2021, "2103.0001"),
			Entry("counter past four digits is not guarded", "2103.9999", march2021, "2103.10000"),
			Entry("end to end month rollover", "2103.0005", april2021, "2104.0001"),
		)
	})

	Context("NextVersion", func() {
		AfterEach(func() {
			versionutils.SetClock(clockwork.NewRealClock())
		})

		It("uses the package clock", func() {
			versionutils.SetClock(clockwork.NewFakeClockAt(march2021))
			Expect(versionutils.NextVersion("2103.0004")).To(Equal("2103.0005"))
			Expect(versionutils.NextVersion("2102.0012")).To(Equal("2103.0001"))
		})
	})

	Context("NextCalendarVersionAt", func() {
		It("names the release after the version", func() {
			next := versionutils.NextCalendarVersionAt("2103.0005", april2021)
			Expect(next).To(Equal(versionutils.NewCalendarVersion("2104", 1)))
			Expect(next.ReleaseName()).To(Equal("v2104.0001"))
		})
	})

	Context("StampFor", func() {
		It("zero pads the month", func() {
			Expect(versionutils.StampFor(time.Date(2009, time.July, 1, 0, 0, 0, 0, time.UTC))).To(Equal("0907"))
			Expect(versionutils.StampFor(time.Date(2030, time.December, 1, 0, 0, 0, 0, time.UTC))).To(Equal("3012"))
		})
	})

	Context("MatchesCalendarRegex", func() {
		It("works", func() {
			Expect(versionutils.MatchesCalendarRegex("2103.0005")).To(BeTrue())
			Expect(versionutils.MatchesCalendarRegex("2103.10000")).To(BeTrue())
			Expect(versionutils.MatchesCalendarRegex("v2103.0005")).To(BeFalse())
			Expect(versionutils.MatchesCalendarRegex("2103.05")).To(BeFalse())
			Expect(versionutils.MatchesCalendarRegex("v1.2.3")).To(BeFalse())
		})
	})

	Context("ParseCalendarVersion", func() {
		It("works", func() {
			parsed, err := versionutils.ParseCalendarVersion("2103.0005")
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(versionutils.NewCalendarVersion("2103", 5)))
			Expect(parsed.String()).To(Equal("2103.0005"))
			Expect(parsed.ReleaseName()).To(Equal("v2103.0005"))
		})

		It("errors when the tag is not a calendar version", func() {
			parsed, err := versionutils.ParseCalendarVersion("v0.1.2")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal("Tag v0.1.2 is not a valid calendar version, must be of the form YYMM.BBBB"))
			Expect(parsed).To(BeNil())
		})

		It("errors on an impossible month", func() {
			_, err := versionutils.ParseCalendarVersion("2113.0001")
			Expect(err).To(MatchError("Month 13 is not valid"))
		})
	})
})
