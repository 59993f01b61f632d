// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scripture

// corpus holds the passages with explicit celestial language, KJV text.
// Small enough to ship in the binary and answer searches offline.
var corpus = []Passage{
	{
		Reference: "Genesis 1:14-16",
		Text:      "And God said, Let there be lights in the firmament of the heaven to divide the day from the night; and let them be for signs, and for seasons, and for days, and years.",
	},
	{
		Reference: "Numbers 24:17",
		Text:      "I shall see him, but not now: I shall behold him, but not nigh: there shall come a Star out of Jacob, and a Sceptre shall rise out of Israel.",
	},
	{
		Reference: "Joshua 10:12-13",
		Text:      "Sun, stand thou still upon Gibeon; and thou, Moon, in the valley of Ajalon. And the sun stood still, and the moon stayed, until the people had avenged themselves upon their enemies.",
	},
	{
		Reference: "Job 38:31-32",
		Text:      "Canst thou bind the sweet influences of Pleiades, or loose the bands of Orion? Canst thou bring forth Mazzaroth in his season? or canst thou guide Arcturus with his sons?",
	},
	{
		Reference: "Isaiah 13:10",
		Text:      "For the stars of heaven and the constellations thereof shall not give their light: the sun shall be darkened in his going forth, and the moon shall not cause her light to shine.",
	},
	{
		Reference: "Ezekiel 32:7-8",
		Text:      "And when I shall put thee out, I will cover the heaven, and make the stars thereof dark; I will cover the sun with a cloud, and the moon shall not give her light. All the bright lights of heaven will I make dark over thee.",
	},
	{
		Reference: "Joel 2:31",
		Text:      "The sun shall be turned into darkness, and the moon into blood, before the great and terrible day of the LORD come.",
	},
	{
		Reference: "Amos 5:8",
		Text:      "Seek him that maketh the seven stars and Orion, and turneth the shadow of death into the morning, and maketh the day dark with night.",
	},
	{
		Reference: "Matthew 2:1-2",
		Text:      "Now when Jesus was born in Bethlehem of Judaea in the days of Herod the king, behold, there came wise men from the east to Jerusalem, saying, Where is he that is born King of the Jews? for we have seen his star in the east, and are come to worship him.",
	},
	{
		Reference: "Matthew 24:29",
		Text:      "Immediately after the tribulation of those days shall the sun be darkened, and the moon shall not give her light, and the stars shall fall from heaven, and the powers of the heavens shall be shaken.",
	},
	{
		Reference: "Matthew 27:45",
		Text:      "Now from the sixth hour there was darkness over all the land unto the ninth hour.",
	},
	{
		Reference: "Mark 13:24-25",
		Text:      "But in those days, after that tribulation, the sun shall be darkened, and the moon shall not give her light, And the stars of heaven shall fall, and the powers that are in heaven shall be shaken.",
	},
	{
		Reference: "Luke 21:25-26",
		Text:      "And there shall be signs in the sun, and in the moon, and in the stars; and upon the earth distress of nations, with perplexity; the sea and the waves roaring; Men's hearts failing them for fear.",
	},
	{
		Reference: "Luke 23:44-45",
		Text:      "And it was about the sixth hour, and there was a darkness over all the earth until the ninth hour. And the sun was darkened, and the veil of the temple was rent in the midst.",
	},
	{
		Reference: "Acts 2:19-20",
		Text:      "And I will shew wonders in heaven above, and signs in the earth beneath; blood, and fire, and vapour of smoke: The sun shall be turned into darkness, and the moon into blood.",
	},
	{
		Reference: "2 Peter 1:19",
		Text:      "We have also a more sure word of prophecy; whereunto ye do well that ye take heed, as unto a light that shineth in a dark place, until the day dawn, and the day star arise in your hearts.",
	},
	{
		Reference: "Revelation 6:12-13",
		Text:      "And I beheld when he had opened the sixth seal, and, lo, there was a great earthquake; and the sun became black as sackcloth of hair, and the moon became as blood; And the stars of heaven fell unto the earth.",
	},
	{
		Reference: "Revelation 12:1-2",
		Text:      "And there appeared a great wonder in heaven; a woman clothed with the sun, and the moon under her feet, and upon her head a crown of twelve stars: And she being with child cried, travailing in birth, and pained to be delivered.",
	},
	{
		Reference: "Revelation 22:16",
		Text:      "I Jesus have sent mine angel to testify unto you these things in the churches. I am the root and the offspring of David, and the bright and morning star.",
	},
}
